package model

// AssetDescriptor describes a single asset: the native unit or one issued
// currency. Supply figures are decimal strings.
type AssetDescriptor struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Domain            string `json:"domain,omitempty"`
	TotalSupply       string `json:"totalSupply"`
	CirculatingSupply string `json:"circulatingSupply"`
}

// PairDescriptor describes one trading pair discovered from the order book.
type PairDescriptor struct {
	ID                   string `json:"id"`
	DexKey               string `json:"dexKey"`
	Asset0ID             string `json:"asset0Id"`
	Asset1ID             string `json:"asset1Id"`
	CreatedAtBlockNumber uint32 `json:"createdAtBlockNumber"`
	CreatedAtTimestamp   int64  `json:"createdAtBlockTimestamp"`
	FeeBps               int    `json:"feeBps"`
}
