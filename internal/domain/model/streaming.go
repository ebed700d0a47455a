package model

// The types below mirror the streaming-search API payload. JSON tags keep
// the upstream field names so cached rows stay readable by the same
// inspection tooling that reads the API responses.

// StreamingService describes the service offering a title (Netflix, Prime,
// an addon channel, ...).
type StreamingService struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	HomePage       string          `json:"homePage"`
	ThemeColorCode string          `json:"themeColorCode"`
	ImageSet       ServiceImageSet `json:"imageSet"`
}

// ServiceImageSet holds the service's branding images.
type ServiceImageSet struct {
	LightThemeImage string `json:"lightThemeImage"`
	DarkThemeImage  string `json:"darkThemeImage"`
	WhiteImage      string `json:"whiteImage"`
}

// Audio is one available audio track.
type Audio struct {
	Language string `json:"language"`
	Region   string `json:"region,omitempty"`
}

// Locale identifies a subtitle language, optionally narrowed to a region.
type Locale struct {
	Language string `json:"language"`
	Region   string `json:"region,omitempty"`
}

// Subtitle is one available subtitle track.
type Subtitle struct {
	ClosedCaptions bool   `json:"closedCaptions"`
	Locale         Locale `json:"locale"`
}

// Price is the cost of a rental or purchase offer.
type Price struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

// StreamingOption is one concrete way to watch a title on one service in
// one region: offer type (subscription, rent, buy, ...), deep link,
// optional price and quality, plus the availability window.
type StreamingOption struct {
	Service        StreamingService  `json:"service"`
	Type           string            `json:"type"`
	Addon          *StreamingService `json:"addon,omitempty"`
	Link           string            `json:"link"`
	VideoLink      string            `json:"videoLink,omitempty"`
	Quality        string            `json:"quality,omitempty"`
	Audios         []Audio           `json:"audios"`
	Subtitles      []Subtitle        `json:"subtitles"`
	Price          *Price            `json:"price,omitempty"`
	ExpiresSoon    bool              `json:"expiresSoon"`
	ExpiresOn      int64             `json:"expiresOn,omitempty"`
	AvailableSince int64             `json:"availableSince"`
}
