package keeper

var (
	// ConfigKey is the key for the registry config singleton
	ConfigKey = []byte{0x01}

	// PendingCreationKey is the single-slot staged pair creation record
	PendingCreationKey = []byte{0x02}

	// PairKeyPrefix is the prefix for pair records keyed by canonical pair key
	PairKeyPrefix = []byte{0x03}

	// PairByAddrKeyPrefix indexes pair keys by pool instance address
	PairByAddrKeyPrefix = []byte{0x04}

	// PairByShareTokenKeyPrefix indexes pair keys by share token address
	PairByShareTokenKeyPrefix = []byte{0x05}

	// NativeDecimalsKeyPrefix is the prefix for native denom decimal records
	NativeDecimalsKeyPrefix = []byte{0x06}
)

// PairStoreKey returns the store key for a pair record
func PairStoreKey(pairKey []byte) []byte {
	return append(PairKeyPrefix, pairKey...)
}

// PairByAddrStoreKey returns the index key for a pair by pool address
func PairByAddrStoreKey(contractAddr string) []byte {
	return append(PairByAddrKeyPrefix, []byte(contractAddr)...)
}

// PairByShareTokenStoreKey returns the index key for a pair by share token
func PairByShareTokenStoreKey(tokenAddr string) []byte {
	return append(PairByShareTokenKeyPrefix, []byte(tokenAddr)...)
}

// NativeDecimalsStoreKey returns the store key for a native denom's decimals
func NativeDecimalsStoreKey(denom string) []byte {
	return append(NativeDecimalsKeyPrefix, []byte(denom)...)
}
