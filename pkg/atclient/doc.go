// Package atclient provides the primary entry point for constructing an
// Airtable API client that implements the airtable.Client interface.
//
// It layers configuration and the HTTP transport on top of the interfaces and
// types defined in the airtable package. Most applications should import
// atclient to build a client, then use the returned airtable.Client to reach
// bases and tables.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/airtable-client/pkg/airtable"
//	  "github.com/fivetwenty-io/airtable-client/pkg/atclient"
//	)
//
//	func example() {
//	  cli, err := atclient.New(&airtable.Config{
//	    APIKey: "patXXXXXXXXXXXXXX",
//	  })
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  records, err := cli.Base("appXXXXXXXXXXXXXX").Table("Tasks").
//	    ListAll(context.Background(), airtable.NewQuerySpec())
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  _ = records
//	}
package atclient
