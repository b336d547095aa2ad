// Package carrier contains the Carrier aggregate: one delivery company in
// the collaborative network, owning its depot, its linear pricing tariff,
// its order ledger, and its lifetime budget of auctions it may initiate.
//
// The ledger is the aggregate's protected invariant surface: every mutation
// goes through Append, RemoveAt, or ReplaceLedger, which enforce that an
// order is owned at most once and that entries keep insertion order.
package carrier
