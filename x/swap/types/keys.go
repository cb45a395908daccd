package types

const (
	// ModuleName defines the module name
	ModuleName = "swap"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_" + ModuleName
)

const (
	// CreatePairReplyID tags the pool-instantiation instruction emitted by
	// CreatePair. The reply delivered by the host runtime must carry it back.
	CreatePairReplyID uint64 = 1

	// ShareTokenDecimals is the reference precision every pool share token is
	// instantiated with, regardless of the pair's own asset decimals.
	ShareTokenDecimals uint8 = 6

	// ShareTokenName and ShareTokenSymbol are fixed for every pool.
	ShareTokenName   = "pool liquidity token"
	ShareTokenSymbol = "uLP"
)

// Pagination settings for the pair listing and any other enumerable
// collection in this module.
const (
	DefaultPairsLimit uint32 = 10
	MaxPairsLimit     uint32 = 30
)
