package geolib

// Geoname is a single toponym record. The web service renders coordinates of
// toponyms as strings, and this struct keeps them that way.
type Geoname struct {
	GeonameID        int    `json:"geonameId"`
	Name             string `json:"name"`
	ToponymName      string `json:"toponymName"`
	Lat              string `json:"lat"`
	Lng              string `json:"lng"`
	CountryID        string `json:"countryId"`
	CountryCode      string `json:"countryCode"`
	CountryName      string `json:"countryName"`
	AdminCode1       string `json:"adminCode1"`
	AdminName1       string `json:"adminName1"`
	FeatureClass     string `json:"fcl"`
	FeatureClassName string `json:"fclName"`
	FeatureCode      string `json:"fcode"`
	FeatureCodeName  string `json:"fcodeName"`
	Population       int64  `json:"population"`
}
