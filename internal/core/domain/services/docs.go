// Package services contains domain logic that spans aggregates.
//
//   - AccessPolicy: the declarative role table every command and query consults
//     before touching the store
//   - OrderDispatcher: assigns an order to a delivery crew member after checking
//     group membership
package services
