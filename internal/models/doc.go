// Package models defines the core domain models for Sharemates.
//
// # Models
//
//   - Household: a group of roommates sharing one expense ledger
//   - Participant: a member of a household
//   - Expense: a shared cost paid by one participant and split among several
//   - Status / Category: closed enumerations attached to an expense
//
// # Design Principles
//
// 1. **Minor units**: money is always an int64 count of cents (or paise);
//    floats never hold amounts
// 2. **Avoid circular references**: relationships use ID strings, not pointers
// 3. **Closed enums**: status and category are typed constants with parse and
//    String helpers, so unknown values are rejected at the edges
package models
