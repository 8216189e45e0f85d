package program

// Account is a storage account handed to the program by the host.
//
// Data has a fixed capacity chosen when the account was created. During
// Process the program has exclusive use of it and either overwrites it fully
// or leaves it untouched.
type Account struct {
	Key   Pubkey
	Owner Pubkey
	Data  []byte
}
