package models

// ContentTier names a gated content tier.
type ContentTier string

const (
	ContentTierBasic   ContentTier = "basic"
	ContentTierPremium ContentTier = "premium"
)

// ContentResource is the opaque content-location payload returned by the
// content_*_v2 endpoints.
type ContentResource struct {
	URL string `json:"url"`
}
