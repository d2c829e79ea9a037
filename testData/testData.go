package test_data

var TokenDetails_test = `{
    "symbol": "SOL",
    "name": "Wrapped SOL",
    "mintAddress": "So11111111111111111111111111111111111111112",
    "price": 171.23456,
    "price1d": 168.9012,
    "price7d": "154.3301",
    "decimal": 9,
    "verified": true,
    "category": "Infrastructure",
    "subcategory": "Wrapped",
    "updateTime": 1704103200,
    "currentSupply": 467211234.12,
    "marketCap": "80001234567.89",
    "tokenAmountVolume24h": 12345678.9,
    "usdValueVolume24h": "2113456789.01",
    "logoUrl": "https://vybe.network/storage/solana/logo.png"
}`

var TopHolders_test = `{
    "data": [
        {
            "rank": 1,
            "ownerName": "Binance Hot Wallet",
            "ownerAddress": "5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9",
            "balance": "12345678.12345",
            "valueUsd": "2113456789.55",
            "percentageOfSupplyHeld": 0.0523,
            "tokenSymbol": "SOL"
        },
        {
            "rank": 2,
            "ownerName": "",
            "ownerAddress": "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM",
            "balance": 4567890.5,
            "valueUsd": 782112345.01,
            "percentageOfSupplyHeld": "0.0191",
            "tokenSymbol": "SOL"
        }
    ]
}`

var HoldersTs_test = `{
    "data": [
        { "holdersTimestamp": 1704067200, "nHolders": 1523001 },
        { "holdersTimestamp": 1704153600, "nHolders": 1525113 },
        { "holdersTimestamp": 1704240000, "nHolders": "1528040" }
    ]
}`

var TransferVolume_test = `{
    "data": [
        { "timeBucketStart": 1704067200, "volume": 11234567.89 },
        { "timeBucketStart": 1704153600, "volume": "9876543.21" },
        { "timeBucketStart": 1704240000, "volume": 14567890.33 }
    ]
}`

var TokenOhlcv_test = `{
    "data": [
        {
            "time": 1704067200,
            "open": "101.52",
            "high": "109.90",
            "low": "99.87",
            "close": "108.11",
            "volume": "2345678.12",
            "volumeUsd": "245678901.23",
            "count": 128934
        },
        {
            "time": 1704153600,
            "open": "108.11",
            "high": "112.45",
            "low": "105.00",
            "close": "110.77",
            "volume": "1987654.98",
            "volumeUsd": "215678123.45",
            "count": 119233
        }
    ]
}`

var ProgramDetails_test = `{
    "programId": "whirLbMiicVdio4qvUfM5KAg6Ct8VwpYzGff3uctyCc",
    "entityName": "Orca",
    "friendlyName": "Orca Whirlpools",
    "name": "Whirlpools",
    "dau": 41523,
    "newUsersChange1d": 1201,
    "transactions1d": "812345",
    "labels": ["DEFI", "AMM"],
    "logoUrl": "https://storage.googleapis.com/orca/orca_logo.png",
    "programDescription": "Concentrated liquidity AMM on Solana."
}`

var ActiveUsers_test = `{
    "data": [
        { "wallet": "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", "transactions": 5123 },
        { "wallet": "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH", "transactions": "4988" },
        { "wallet": "5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9", "transactions": 3004 }
    ]
}`

var ActiveUsersTs_test = `{
    "data": [
        { "blockTime": 1704067200, "dau": 40112 },
        { "blockTime": 1704153600, "dau": 41523 },
        { "blockTime": 1704240000, "dau": "43337" }
    ]
}`

var TxCountTs_test = `{
    "data": [
        { "blockTime": 1704067200, "transactionsCount": 798112 },
        { "blockTime": 1704153600, "transactionsCount": "812345" },
        { "blockTime": 1704240000, "transactionsCount": 845003 }
    ]
}`

var ProgramTvl_test = `{
    "data": [
        { "time": "2024-01-01T00:00:00.000Z", "tvl": "312456789.12" },
        { "time": "2024-01-02T00:00:00.000Z", "tvl": 318112345.67 },
        { "time": "2024-01-03T00:00:00.000Z", "tvl": "322987654.00" }
    ]
}`

var WalletPnl_test = `{
    "summary": {
        "realizedPnlUsd": 1234.56,
        "unrealizedPnlUsd": -210.44,
        "tradesVolumeUsd": "98765.43",
        "tradesCount": 87,
        "averageTradeUsd": 1135.24,
        "winRate": 0.6321
    },
    "tokenMetrics": [
        {
            "tokenSymbol": "SOL",
            "realizedPnlUsd": 500.12,
            "unrealizedPnlUsd": "-55.01",
            "buys": { "volumeUsd": 20123.45, "transactionCount": 31 },
            "sells": { "volumeUsd": "18456.01", "transactionCount": 27 }
        },
        {
            "tokenSymbol": "JUP",
            "realizedPnlUsd": "734.44",
            "unrealizedPnlUsd": -155.43,
            "buys": { "volumeUsd": 9123.11, "transactionCount": 15 },
            "sells": { "volumeUsd": 8456.77, "transactionCount": "14" }
        }
    ]
}`

var WalletPnlEmpty_test = `{
    "summary": {},
    "tokenMetrics": []
}`

var TokenBalance_test = `{
    "ownerAddress": "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH",
    "totalTokenValueUsd": "4321.09",
    "stakedSolBalanceUsd": 1500.55,
    "totalTokenCount": 2,
    "data": [
        {
            "symbol": "SOL",
            "name": "Wrapped SOL",
            "mintAddress": "So11111111111111111111111111111111111111112",
            "priceUsd1dChange": 1.38,
            "valueUsd1dChange": "41.02",
            "amount": 17.345,
            "valueUsd": 2970.12,
            "verified": true
        },
        {
            "symbol": "USDC",
            "name": "USD Coin",
            "mintAddress": "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v",
            "priceUsd1dChange": "-0.01",
            "valueUsd1dChange": -0.14,
            "amount": "1350.97",
            "valueUsd": "1350.97",
            "verified": true
        }
    ]
}`

var TokenBalanceTs_test = `{
    "data": [
        { "blockTime": 1704067200, "tokenValue": 4100.12, "stakeValue": 1480.01, "systemValue": 120.55, "stakeValueSol": 15.2 },
        { "blockTime": 1704153600, "tokenValue": "4321.09", "stakeValue": 1500.55, "systemValue": "118.91", "stakeValueSol": 15.2 }
    ]
}`

var NftBalance_test = `{
    "ownerAddress": "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH",
    "totalSol": 3.12,
    "totalUsd": "534.21",
    "totalNftCollectionCount": 2,
    "data": [
        {
            "name": "Mad Lads",
            "collectionAddress": "J1S9H3QjnRtBbbuD4HjPV6RpRhwuk4zKbxsnCHuTgh9w",
            "totalItems": 1,
            "valueSol": 2.5,
            "valueUsd": "428.05",
            "priceSol": "2.5",
            "priceUsd": 428.05
        },
        {
            "name": "Tensorians",
            "collectionAddress": "5PDdLNKsgoYpnRcVHCdGTsd6VXSFKdmaxnRufgXbpTqv",
            "totalItems": 2,
            "valueSol": "0.62",
            "valueUsd": 106.16,
            "priceSol": 0.31,
            "priceUsd": "53.08"
        }
    ]
}`

var CollectionOwners_test = `{
    "data": [
        { "owner": "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", "amount": 42 },
        { "owner": "HN7cABqLq46Es1jh92dQQisAq662SmxELLLsHHe4YWrH", "amount": "17" },
        { "owner": "5tzFkiKscXHK5ZXCGbXZxdw7gTjjD1mBwuoFbhUvuAi9", "amount": 11 }
    ]
}`

var ApiError_test = `{
    "message": "Unauthorized",
    "statusCode": 401
}`
