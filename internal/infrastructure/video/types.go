package video

// DirectUpload is an upload session handle returned by the provider.
// The client pushes the raw video straight to URL; the provider reports
// readiness later through a webhook.
type DirectUpload struct {
	ID      string
	URL     string
	AssetID string
	Status  string
}

// PlaybackID identifies a playable rendition of an asset.
type PlaybackID struct {
	ID     string `json:"id"`
	Policy string `json:"policy"`
}

// Asset is the provider-side representation of an ingested video.
type Asset struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"` // preparing, ready, errored
	UploadID    string       `json:"upload_id"`
	PlaybackIDs []PlaybackID `json:"playback_ids"`
}

// Asset statuses reported by the provider.
const (
	AssetStatusPreparing = "preparing"
	AssetStatusReady     = "ready"
	AssetStatusErrored   = "errored"
)

// wire types for upload creation

type createUploadRequest struct {
	NewAssetSettings assetSettings `json:"new_asset_settings"`
	CORSOrigin       string        `json:"cors_origin"`
}

type assetSettings struct {
	PlaybackPolicies []string     `json:"playback_policies"`
	Inputs           []assetInput `json:"inputs"`
}

type assetInput struct {
	GeneratedSubtitles []generatedSubtitle `json:"generated_subtitles"`
}

type generatedSubtitle struct {
	LanguageCode string `json:"language_code"`
	Name         string `json:"name"`
}

type uploadData struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AssetID string `json:"asset_id"`
	Status  string `json:"status"`
}

type uploadResponse struct {
	Data uploadData `json:"data"`
}

type assetResponse struct {
	Data Asset `json:"data"`
}
