package schema

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rosterops/staffmap/pkg/errors"
)

// Mapping translates raw source column labels to canonical fields. It is a
// many-to-one relation: many label variants map to one field. A Mapping is
// immutable once built.
type Mapping struct {
	labels map[string]Field
}

// NewMapping builds a mapping from raw label to canonical field. Labels are
// matched after trimming surrounding whitespace.
func NewMapping(labels map[string]Field) Mapping {
	m := make(map[string]Field, len(labels))
	for label, field := range labels {
		m[strings.TrimSpace(label)] = field
	}
	return Mapping{labels: m}
}

// Resolve returns the canonical field for a raw label, if one is mapped.
func (m Mapping) Resolve(label string) (Field, bool) {
	f, ok := m.labels[strings.TrimSpace(label)]
	return f, ok
}

// Len returns the number of mapped label variants.
func (m Mapping) Len() int {
	return len(m.labels)
}

// LoadMapping reads a label-to-field mapping from a YAML file of the form
// "raw label": Canonical_Field.
func LoadMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mapping{}, errors.NewIOError("read", path, err)
	}

	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Mapping{}, errors.NewParseError("yaml", path, "invalid mapping file", err)
	}

	labels := make(map[string]Field, len(raw))
	for label, field := range raw {
		labels[label] = Field(field)
	}
	return NewMapping(labels), nil
}

// DefaultMapping returns the label variants observed across the known
// directory exports, keyed to their canonical fields.
func DefaultMapping() Mapping {
	return NewMapping(map[string]Field{
		// Basic info
		"Email Address":  FieldOfficialEmail,
		"Official Email": FieldOfficialEmail,
		"Full Name":      FieldFullName,
		"Name":           FieldFullName,
		"CNIC / ID":      FieldNationalID,
		"CNIC":           FieldNationalID,
		"Personal Email": FieldPersonalEmail,
		"Contact Number": FieldContactNumber,
		"Date of Birth":  FieldDateOfBirth,
		"Gender":         FieldGender,
		"Address":        FieldCurrentAddress,
		"Permanent Address": FieldPermanentAddress,
		"Nationality":       FieldNationality,
		"LinkedIn URL":      FieldLinkedInURL,
		"Marital Status":    FieldMaritalStatus,

		// Employment
		"Joining Date":        FieldJoiningDate,
		"Department":          FieldDepartment,
		"Designation":         FieldDesignation,
		"Reporting Manager":   FieldReportingManager,
		"Job Type":            FieldJobType,
		"Job Location":        FieldJobLocation,
		"Employment Location": FieldJobLocation,
		"Recruiter Name":      FieldRecruiterName,
		"Status":              FieldEmploymentStatus,
		"Status.1":            FieldEmploymentStatus,
		"Employment Status":   FieldEmploymentStatus,
		"Employment End Date": FieldEmploymentEnd,
		"Probation Period":    FieldProbationMonths,
		"Probation End Date":  FieldProbationEnd,
		"Re-Joined":           FieldRejoined,

		// Family / emergency
		"Father's Name":                    FieldFatherName,
		"Emergency Contact Number":         FieldEmergencyContact,
		"Emergency Contact's Relationship": FieldEmergencyRelationship,
		"Blood Group":                      FieldBloodGroup,

		// Compensation
		"Basic Salary": FieldBasicSalary,
		"Medical":      FieldMedicalAllowance,
		"Gross Salary": FieldGrossSalary,

		// Banking
		"Bank Name":                            FieldBankName,
		"Bank Account Title":                   FieldBankAccountTitle,
		"National Tax Number (NTN)":            FieldNationalTaxNum,
		"Swift Code/ BIC Code":                 FieldSwiftCode,
		"Bank Account Number-IBAN (24 digits)": FieldAccountIBAN,
		"ACCOUNTNUMBER":                        FieldAccountIBAN,
		"Routing Number":                       FieldRoutingNumber,
		"BANK_CODE":                            FieldBankCode,

		// IDs
		"ID":          FieldEmployeeID,
		"Employee ID": FieldEmployeeID,
		"ID Again":    FieldEmployeeID,

		// Integrations
		"Slack ID":  FieldSlackID,
		"Timestamp": FieldSubmissionTime,
	})
}
