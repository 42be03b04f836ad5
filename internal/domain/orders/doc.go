// Package orders models sales orders and their lifecycle. Status transitions
// drive stock and accounts-receivable postings: confirming an order consumes
// stock and, for fiado sales, debits the customer credit ledger; cancelling a
// confirmed order reverses both. PlanTransition turns a requested transition
// into the posting plan the persistence layer applies atomically.
package orders
