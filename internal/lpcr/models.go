package lpcr

import "encoding/json"

// Applicant is one identity record from the input file. Known identity
// fields are typed; anything else the input carries is preserved in Extra so
// the record reaches the wire exactly as supplied.
type Applicant struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	SSN        string `json:"ssn"`
	Street1    string `json:"street1"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	BirthDate  string `json:"birthDate"`
	Phone      string `json:"phone"`

	Extra map[string]interface{} `json:"-"`
}

var applicantKnownFields = map[string]bool{
	"firstName": true, "middleName": true, "lastName": true,
	"ssn": true, "street1": true, "city": true, "state": true,
	"zip": true, "birthDate": true, "phone": true,
}

// UnmarshalJSON keeps unknown input fields in Extra instead of dropping them.
func (a *Applicant) UnmarshalJSON(data []byte) error {
	type plain Applicant
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k := range all {
		if applicantKnownFields[k] {
			delete(all, k)
		}
	}
	if len(all) > 0 {
		p.Extra = all
	}

	*a = Applicant(p)
	return nil
}

// MarshalJSON folds Extra back in so the outbound record matches the input.
func (a Applicant) MarshalJSON() ([]byte, error) {
	type plain Applicant
	data, err := json.Marshal(plain(a))
	if err != nil {
		return nil, err
	}
	if len(a.Extra) == 0 {
		return data, nil
	}

	var merged map[string]interface{}
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range a.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// BureauCredentials is the subscriber identity inside a bureau settings
// block.
type BureauCredentials struct {
	SubscriberCode string `json:"subscriberCode"`
	Password       string `json:"password"`
}

// FixedSettings is the immutable per-bureau settings block shared by every
// request in a run.
type FixedSettings struct {
	InstitutionID      string            `json:"institutionId"`
	Origin             string            `json:"origin"`
	Products           []string          `json:"products"`
	Credentials        BureauCredentials `json:"credentials"`
	ProductCode        string            `json:"productCode"`
	IndustryCode       string            `json:"industryCode"`
	PermissiblePurpose string            `json:"permissiblePurpose"`
}

// RequestPayload is the body of one report request. Applicants always has
// exactly one element.
type RequestPayload struct {
	Bureau     string        `json:"bureau"`
	Type       string        `json:"type"`
	Settings   FixedSettings `json:"settings"`
	Applicants []Applicant   `json:"applicants"`
}

// ResponseSnapshot captures a received HTTP response. Body holds the decoded
// JSON when the response body is valid JSON, else the raw text.
type ResponseSnapshot struct {
	StatusCode int               `json:"status_code"`
	Reason     string            `json:"reason"`
	Headers    map[string]string `json:"headers"`
	Body       interface{}       `json:"body"`
}

// ApplicantEcho identifies the applicant a result entry belongs to without
// repeating the full SSN.
type ApplicantEcho struct {
	Index     int    `json:"index"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	SSNLast4  string `json:"ssn_last4"`
}

// ResultEntry pairs one applicant with either a response snapshot or a
// failure description, never both.
type ResultEntry struct {
	Applicant      ApplicantEcho     `json:"applicant"`
	RequestPayload RequestPayload    `json:"request_payload"`
	Response       *ResponseSnapshot `json:"response,omitempty"`
	Error          string            `json:"error,omitempty"`
}

// ResultSet is the ordered collection of result entries, index-aligned with
// the input applicants.
type ResultSet []ResultEntry
