package domain

// MuniConstants is the set of values the municipality handler expects on
// every incident regardless of what the caller sent.
type MuniConstants struct {
	EventCallSourceID int
	CityCode          string
	CityDesc          string
	EventCallCenterID string
	StreetCode        string
	StreetDesc        string
	ContactUsType     string
}

// NetanyaMuni is the constant table for the incidents.ashx endpoint.
var NetanyaMuni = MuniConstants{
	EventCallSourceID: 4,
	CityCode:          "7400",
	CityDesc:          "נתניה",
	EventCallCenterID: "3",
	StreetCode:        "898",
	StreetDesc:        "קרל פופר",
	ContactUsType:     "3",
}

// DownstreamPayload is serialized into the "json" form field. Field order is
// the order the municipality's own form produces.
type DownstreamPayload struct {
	EventCallSourceID int    `json:"eventCallSourceId"`
	CityCode          string `json:"cityCode"`
	CityDesc          string `json:"cityDesc"`
	EventCallCenterID string `json:"eventCallCenterId"`
	StreetCode        string `json:"streetCode"`
	StreetDesc        string `json:"streetDesc"`
	ContactUsType     string `json:"contactUsType"`

	EventCallDesc   string `json:"eventCallDesc"`
	HouseNumber     string `json:"houseNumber"`
	CallerFirstName string `json:"callerFirstName"`
	CallerLastName  string `json:"callerLastName"`
	CallerTZ        string `json:"callerTZ"`
	CallerPhone1    string `json:"callerPhone1"`
	CallerEmail     string `json:"callerEmail"`
}

// DownstreamResponse is the JSON body returned by incidents.ashx.
type DownstreamResponse struct {
	ResultCode       int    `json:"ResultCode"`
	ErrorDescription string `json:"ErrorDescription"`
	ResultStatus     string `json:"ResultStatus"`
	Data             string `json:"data"`
}

const (
	ResultCodeOK        = 200
	ResultStatusCreated = "SUCCESS CREATE"
)
