package models

// Storage codes of the transaction types.
const (
	TypeCodeIncome  = "I"
	TypeCodeExpense = "E"
)

// FirstTransactionID is the id issued to the first transaction of a new profile.
const FirstTransactionID = 1

// File permissions
const (
	PermissionDataFile  = 0600
	PermissionDirectory = 0750
	PermissionExport    = 0644
)
