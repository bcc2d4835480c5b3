package models

type SponsorTier string

const (
	TierPlatinum     SponsorTier = "Platinum"
	TierGold         SponsorTier = "Gold"
	TierSilver       SponsorTier = "Silver"
	TierCollaborator SponsorTier = "Collaborator"
)

type Sponsor struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	LogoURL string      `json:"logo_url"`
	Tier    SponsorTier `json:"tier"`
}

type GalleryItem struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Year  int    `json:"year"`
}

type SocialConfig struct {
	Handle string `json:"handle"`
	URL    string `json:"url"`
}

type Socials struct {
	Instagram SocialConfig `json:"instagram"`
	Twitter   SocialConfig `json:"twitter"`
	TikTok    SocialConfig `json:"tiktok"`
	YouTube   SocialConfig `json:"youtube"`
}

type VenueInfo struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Features    []string `json:"features"`
}

type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SiteContent - редактируемое содержимое публичных страниц.
type SiteContent struct {
	HeroTitle     string        `json:"hero_title"`
	HeroSubtitle  string        `json:"hero_subtitle"`
	AboutTitle    string        `json:"about_title"`
	AboutText     string        `json:"about_text"`
	AboutImageURL string        `json:"about_image_url"`
	AboutStats    []Stat        `json:"about_stats"`
	Venue         VenueInfo     `json:"venue"`
	Socials       Socials       `json:"socials"`
	ContactEmail  string        `json:"contact_email"`
	Sponsors      []Sponsor     `json:"sponsors"`
	Gallery       []GalleryItem `json:"gallery"`
}

func (c SiteContent) Clone() SiteContent {
	out := c
	out.AboutStats = append([]Stat(nil), c.AboutStats...)
	out.Venue.Features = append([]string(nil), c.Venue.Features...)
	out.Sponsors = append([]Sponsor(nil), c.Sponsors...)
	out.Gallery = append([]GalleryItem(nil), c.Gallery...)
	return out
}

// CategoryLimits caps how many teams each division accepts.
type CategoryLimits map[Division]int

func (l CategoryLimits) Clone() CategoryLimits {
	out := make(CategoryLimits, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
