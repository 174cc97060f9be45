package lpcr

import "strings"

// MakeEcho builds the identity echo for one applicant. Only the last four
// characters of the SSN ever leave this function.
func MakeEcho(index int, applicant Applicant) ApplicantEcho {
	return ApplicantEcho{
		Index:     index,
		FirstName: applicant.FirstName,
		LastName:  applicant.LastName,
		SSNLast4:  ssnLast4(applicant.SSN),
	}
}

func ssnLast4(ssn string) string {
	if len(ssn) <= 4 {
		return ssn
	}
	return ssn[len(ssn)-4:]
}

// redactPayload copies the payload with the applicant SSN masked down to its
// last four digits. The full SSN goes to the wire but never into the result
// file.
func redactPayload(payload RequestPayload) RequestPayload {
	applicants := make([]Applicant, len(payload.Applicants))
	copy(applicants, payload.Applicants)
	for i := range applicants {
		if len(applicants[i].SSN) > 4 {
			applicants[i].SSN = strings.Repeat("*", len(applicants[i].SSN)-4) + ssnLast4(applicants[i].SSN)
		}
	}
	payload.Applicants = applicants
	return payload
}

// AddResponse appends an entry pairing the applicant with a received
// response. Entries are appended in traversal order, which is input order
// under the sequential model.
func (rs *ResultSet) AddResponse(echo ApplicantEcho, payload RequestPayload, snapshot *ResponseSnapshot) {
	*rs = append(*rs, ResultEntry{
		Applicant:      echo,
		RequestPayload: redactPayload(payload),
		Response:       snapshot,
	})
}

// AddFailure appends an entry pairing the applicant with a failure
// description. The response field stays empty.
func (rs *ResultSet) AddFailure(echo ApplicantEcho, payload RequestPayload, err error) {
	*rs = append(*rs, ResultEntry{
		Applicant:      echo,
		RequestPayload: redactPayload(payload),
		Error:          err.Error(),
	})
}
