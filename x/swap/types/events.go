package types

// Event types emitted by the swap module
const (
	EventTypeUpdateConfig           = "update_config"
	EventTypeCreatePair             = "create_pair"
	EventTypePairRegistered         = "pair_registered"
	EventTypeAddNativeTokenDecimals = "add_native_token_decimals"
	EventTypeMigratePair            = "migrate_pair"
	EventTypeProvideLiquidity       = "provide_liquidity"
	EventTypeWithdrawLiquidity      = "withdraw_liquidity"
	EventTypeSwap                   = "swap"
)

// Event attribute keys
const (
	AttributeKeyOwner            = "owner"
	AttributeKeyPair             = "pair"
	AttributeKeyPairContract     = "pair_contract_addr"
	AttributeKeyLiquidityToken   = "liquidity_token_addr"
	AttributeKeyDenom            = "denom"
	AttributeKeyDecimals         = "decimals"
	AttributeKeyCodeID           = "code_id"
	AttributeKeySender           = "sender"
	AttributeKeyReceiver         = "receiver"
	AttributeKeyAssets           = "assets"
	AttributeKeyShare            = "share"
	AttributeKeyRefundAssets     = "refund_assets"
	AttributeKeyWithdrawnShare   = "withdrawn_share"
	AttributeKeyOfferAsset       = "offer_asset"
	AttributeKeyAskAsset         = "ask_asset"
	AttributeKeyOfferAmount      = "offer_amount"
	AttributeKeyReturnAmount     = "return_amount"
	AttributeKeySpreadAmount     = "spread_amount"
	AttributeKeyCommissionAmount = "commission_amount"
)
