package constants

const (
	//分頁
	DefaultPage            int = 1
	DefaultProductsLimit   int = 30
	DefaultReviewsLimit    int = 10
	DefaultCategoriesLimit int = 20
	DefaultUsersLimit      int = 25
	DefaultContactLimit    int = 20
)

// headers and cookies shared with the browser and the backend
const (
	FingerprintHeader = "x-client-fingerprint"
	RequestIDHeader   = "X-Request-Id"
	SessionCookieName = "sf_session"

	// optional device hints sent by the front end for fingerprinting
	ScreenSizeHeader = "X-Screen-Size"
	TimezoneHeader   = "X-Timezone"
	PlatformHeader   = "Sec-CH-UA-Platform"
)

type ContextKey string

const (
	RequestIDKey     ContextKey = "request_id"
	SessionIDKey     ContextKey = "session_id"
	FingerprintKey   ContextKey = "client_fingerprint"
	UserAgentKey     ContextKey = "user_agent"
	IPKey            ContextKey = "ip_address"
	DeviceInfoKey    ContextKey = "device_info"
	StorefrontKey    ContextKey = "storefront"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Stag  ENV = "staging"
	Prod  ENV = "production"
)
