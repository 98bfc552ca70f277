package domain

// Product identifies a purchasable item in the catalog.
type Product string

const (
	ProductSection8Notice   Product = "section8_notice"
	ProductSection21Notice  Product = "section21_notice"
	ProductEvictionPack     Product = "eviction_pack"
	ProductMoneyClaimPack   Product = "money_claim_pack"
	ProductTenancyAgreement Product = "tenancy_agreement"
)

// ProductInfo describes one catalog entry: its price and the documents a
// purchase of it delivers.
type ProductInfo struct {
	Code        Product        `json:"code"`
	Name        string         `json:"name"`
	AmountPence int64          `json:"amountPence"`
	Currency    string         `json:"currency"`
	Documents   []DocumentType `json:"documents"`
}

// catalog is ordered the way the pricing page lists products.
var catalog = []ProductInfo{
	{
		Code:        ProductSection8Notice,
		Name:        "Section 8 Notice (Form 3)",
		AmountPence: 3999,
		Currency:    "gbp",
		Documents:   []DocumentType{DocumentTypeSection8Notice},
	},
	{
		Code:        ProductSection21Notice,
		Name:        "Section 21 Notice (Form 6A)",
		AmountPence: 3999,
		Currency:    "gbp",
		Documents:   []DocumentType{DocumentTypeSection21Notice},
	},
	{
		Code:        ProductEvictionPack,
		Name:        "Complete Eviction Pack",
		AmountPence: 14900,
		Currency:    "gbp",
		Documents:   []DocumentType{DocumentTypeSection8Notice, DocumentTypeSection21Notice},
	},
	{
		Code:        ProductMoneyClaimPack,
		Name:        "Rent Arrears Money Claim Pack",
		AmountPence: 9900,
		Currency:    "gbp",
		Documents:   []DocumentType{DocumentTypeLetterBeforeClaim},
	},
	{
		Code:        ProductTenancyAgreement,
		Name:        "Assured Shorthold Tenancy Agreement",
		AmountPence: 2999,
		Currency:    "gbp",
		Documents:   []DocumentType{DocumentTypeTenancyAgreement},
	},
}

// Products returns the catalog in display order.
func Products() []ProductInfo {
	out := make([]ProductInfo, len(catalog))
	copy(out, catalog)

	return out
}

// ProductByCode looks up a catalog entry. The second return is false for
// unknown products.
func ProductByCode(code Product) (ProductInfo, bool) {
	for _, p := range catalog {
		if p.Code == code {
			return p, true
		}
	}

	return ProductInfo{}, false
}
