// Package record provides the host-side record edited by translatable
// fields.
//
// A Record is bound to one owner in one translations table. It reads
// translations straight from the store, hands out translate-or-new handles
// for writes and keeps them in memory until Save persists every dirty handle
// in a single transaction.
package record
