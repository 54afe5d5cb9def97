package dto

type Vendor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo,omitempty"`
}

type VendorListResponse struct {
	Vendors []Vendor `json:"vendors"`
}

// Setting is a webhook-style notification target kept by the settings API.
type Setting struct {
	ID      string `json:"id,omitempty"`
	Vendor  string `json:"vendor"`
	Title   string `json:"title"`
	Channel string `json:"channel"`
	HookURL string `json:"hook_url"`
}

type SettingRequest struct {
	Vendor  string `json:"vendor" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Channel string `json:"channel"`
	HookURL string `json:"hook_url" validate:"required,url"`
}

type SettingListResponse struct {
	Settings []Setting `json:"settings"`
}

// LoginResponse is the settings API's token envelope.
type LoginResponse struct {
	Token string `json:"token"`
}
