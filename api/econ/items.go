package econ

// Asset is one item on either side of a trade offer.
type Asset struct {
	AppID      uint32 `json:"appid"`
	ContextID  string `json:"contextid"`
	AssetID    string `json:"assetid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Amount     string `json:"amount"`
	// Missing is set once the item left the owner's inventory.
	Missing bool `json:"missing"`
}

// Description is shared by every asset with the same class and instance.
type Description struct {
	AppID           uint32   `json:"appid"`
	ClassID         string   `json:"classid"`
	InstanceID      string   `json:"instanceid"`
	Currency        bool     `json:"currency"`
	BackgroundColor string   `json:"background_color"`
	IconURL         string   `json:"icon_url"`
	IconURLLarge    string   `json:"icon_url_large"`
	Tradable        bool     `json:"tradable"`
	Name            string   `json:"name"`
	NameColor       string   `json:"name_color"`
	Type            string   `json:"type"`
	MarketName      string   `json:"market_name"`
	MarketHashName  string   `json:"market_hash_name"`
	Commodity       bool     `json:"commodity"`
	Marketable      bool     `json:"marketable"`
	FraudWarnings   []string `json:"fraudwarnings,omitempty"`
	Tags            []Tag    `json:"tags,omitempty"`
	Lines           []Line   `json:"descriptions,omitempty"`
	Actions         []Action `json:"actions,omitempty"`
	MarketActions   []Action `json:"market_actions,omitempty"`
}

func (d Description) Key() string {
	return d.ClassID + "_" + d.InstanceID
}

type Tag struct {
	Category              string `json:"category"`
	InternalName          string `json:"internal_name"`
	LocalizedCategoryName string `json:"localized_category_name"`
	LocalizedTagName      string `json:"localized_tag_name"`
	Color                 string `json:"color,omitempty"`
}

type Line struct {
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
	Name  string `json:"name"`
}

type Action struct {
	Link string `json:"link"`
	Name string `json:"name"`
}

// DescriptionIndex maps Description.Key values to descriptions.
func DescriptionIndex(descriptions []Description) map[string]Description {
	index := make(map[string]Description, len(descriptions))
	for _, description := range descriptions {
		index[description.Key()] = description
	}
	return index
}

// DescriptionOf looks up the description of asset in an index built by
// DescriptionIndex.
func DescriptionOf(index map[string]Description, asset Asset) (Description, bool) {
	description, ok := index[asset.ClassID+"_"+asset.InstanceID]
	return description, ok
}
