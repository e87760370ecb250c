package respond

var (
	RedirectURL           = redirectURL
	URLWithQueryParams    = urlWithQueryParams
	URLWithFragmentParams = urlWithFragmentParams
	URLWithParam          = urlWithParam
	ReturnsToClient       = returnsToClient
	DeliveryParams        = deliveryParams
	AugmentedParams       = augmentedParams
	WriteFormPost         = writeFormPost
)
