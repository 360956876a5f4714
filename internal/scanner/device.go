package scanner

import (
	"fmt"
	"net/url"
	"regexp"
)

var (
	mobileUA  = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)
	iosUA     = regexp.MustCompile(`iPad|iPhone|iPod`)
	androidUA = regexp.MustCompile(`(?i)Android`)
)

// Device is what a User-Agent tells us about AR support
type Device struct {
	IsMobile  bool `json:"isMobile"`
	IsIOS     bool `json:"isIOS"`
	IsAndroid bool `json:"isAndroid"`
}

// DetectDevice classifies a User-Agent string
func DetectDevice(userAgent string) Device {
	return Device{
		IsMobile:  mobileUA.MatchString(userAgent),
		IsIOS:     iosUA.MatchString(userAgent),
		IsAndroid: androidUA.MatchString(userAgent),
	}
}

// Platform names the native AR viewer available to the device, if any
func (d Device) Platform() string {
	switch {
	case d.IsIOS:
		return "quick-look"
	case d.IsAndroid:
		return "scene-viewer"
	default:
		return ""
	}
}

// FallbackURL returns a native AR viewer link for devices without WebXR:
// AR Quick Look on iOS, Scene Viewer on Android. Other devices get "".
func FallbackURL(d Device, modelURL, title string, scale float64) string {
	if title == "" {
		title = "View in AR"
	}
	if scale <= 0 {
		scale = 1.0
	}

	switch {
	case d.IsIOS:
		return fmt.Sprintf("https://apple-cdn.example.com/ar-quicklook?url=%s&title=%s",
			url.QueryEscape(modelURL), url.QueryEscape(title))
	case d.IsAndroid:
		return fmt.Sprintf("intent://arvr.google.com/scene-viewer/1.0?file=%s&mode=ar_only&title=%s&resizable=false&scale=%g"+
			"#Intent;scheme=https;package=com.google.android.googlequicksearchbox;action=android.intent.action.VIEW;"+
			"S.browser_fallback_url=https://developers.google.com/ar;end;",
			url.QueryEscape(modelURL), url.QueryEscape(title), scale)
	default:
		return ""
	}
}
