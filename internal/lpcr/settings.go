package lpcr

import "lpcr-submit/internal/common/errors"

// Per-bureau settings blocks. Passwords are placeholders; real credentials
// arrive through deployment configuration, never source control.
var bureauSettings = map[string]FixedSettings{
	"EFX": {
		InstitutionID: "1239438",
		Origin:        "INDIRECT",
		Products:      []string{"05201"},
		Credentials: BureauCredentials{
			SubscriberCode: "999ZS06891",
			Password:       "[INSERT PW]",
		},
		ProductCode:        "07000",
		IndustryCode:       "I",
		PermissiblePurpose: "CI",
	},
	"TU": {
		InstitutionID: "1239438",
		Origin:        "INDIRECT",
		Products:      []string{"00W82"},
		Credentials: BureauCredentials{
			SubscriberCode: "06226909913",
			Password:       "[INSERT PW]",
		},
		ProductCode:        "07000",
		IndustryCode:       "I",
		PermissiblePurpose: "CI",
	},
	"XPN": {
		InstitutionID: "25693",
		Origin:        "INDIRECT",
		Products:      []string{"FE"},
		Credentials: BureauCredentials{
			SubscriberCode: "5991774",
			Password:       "[INSERT PW]",
		},
	},
	"LN": {
		InstitutionID: "1239438",
		Origin:        "INDIRECT",
		Products:      []string{"RVA1503_0"},
		Credentials: BureauCredentials{
			SubscriberCode: "AmTrustNADEVRVXML",
			Password:       "[INSERT PW]",
		},
		ProductCode:        "RISK_VIEW",
		PermissiblePurpose: "Written Consent Prequalification",
	},
}

// SettingsForBureau returns the fixed settings block for a bureau code. The
// returned value is a copy; callers cannot mutate the table.
func SettingsForBureau(bureau string) (FixedSettings, error) {
	settings, ok := bureauSettings[bureau]
	if !ok {
		return FixedSettings{}, errors.NewBureauUnknownError(bureau)
	}
	products := make([]string, len(settings.Products))
	copy(products, settings.Products)
	settings.Products = products
	return settings, nil
}

// Bureaus lists the supported bureau codes.
func Bureaus() []string {
	return []string{"EFX", "TU", "XPN", "LN"}
}
