// Package domain contains the entities the ledger API stores: users,
// categories, clients and transactions, with the constructors and validation
// rules that keep them consistent regardless of transport or storage.
package domain
