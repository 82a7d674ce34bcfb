// Package airtable defines the public surface of the Airtable API client:
// the Client/Base/Table interfaces, the record model, the immutable QuerySpec
// builder, the page iterator, and the error taxonomy.
//
// Construct a client with the atclient package:
//
//	cli, err := atclient.New(&airtable.Config{APIKey: os.Getenv("PERSONAL_ACCESS_TOKEN")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	table := cli.Base("appXXXXXXXXXXXXXX").Table("Tasks")
//
// Query with a spec; With methods return copies, so specs can be reused as
// templates:
//
//	spec := airtable.NewQuerySpec().
//		WithFilterFormula("Status='Active'").
//		WithPageSize(50)
//
//	records, err := table.ListAll(ctx, spec)
//
// Or walk pages explicitly:
//
//	it := table.Iterate(ctx, spec)
//	for it.HasNext() {
//		page, err := it.Next()
//		...
//	}
//
// Mutations are bounded by the API's batch limit of 10 records and are issued
// as exactly one round trip each; the client never splits or retries them.
package airtable
