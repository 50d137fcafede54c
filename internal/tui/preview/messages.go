package preview

// ImageLoadedMsg reports that a background image load finished, successfully
// or not. The next render shows the new phase.
type ImageLoadedMsg struct {
	URL string
}

// imagesClosedMsg is sent once the fetcher's update channel is closed.
type imagesClosedMsg struct{}
