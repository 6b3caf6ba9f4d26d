// Package schema defines the canonical employee record schema: the fixed
// target field set, the label-to-field mapping table, the canonical
// employment statuses, and the normalized record that flows through the
// consolidation pipeline. All schema configuration is immutable once built
// and passed explicitly into the components that use it.
package schema

// Field is one of the fixed canonical column names that every source is
// normalized into.
type Field string

// Canonical fields.
const (
	FieldEmployeeID       Field = "Employee_ID"
	FieldFullName         Field = "Full_Name"
	FieldOfficialEmail    Field = "Official_Email"
	FieldPersonalEmail    Field = "Personal_Email"
	FieldNationalID       Field = "National_ID"
	FieldContactNumber    Field = "Contact_Number"
	FieldDateOfBirth      Field = "Date_of_Birth"
	FieldGender           Field = "Gender"
	FieldCurrentAddress   Field = "Current_Address"
	FieldPermanentAddress Field = "Permanent_Address"
	FieldNationality      Field = "Nationality"
	FieldLinkedInURL      Field = "LinkedIn_Profile_URL"
	FieldMaritalStatus    Field = "Marital_Status"

	FieldJoiningDate      Field = "Joining_Date"
	FieldDepartment       Field = "Department"
	FieldDesignation      Field = "Designation"
	FieldReportingManager Field = "Reporting_Manager"
	FieldJobType          Field = "Job_Type"
	FieldJobLocation      Field = "Job_Location"
	FieldRecruiterName    Field = "Recruiter_Name"
	FieldEmploymentStatus Field = "Employment_Status"
	FieldEmploymentEnd    Field = "Employment_End_Date"
	FieldProbationMonths  Field = "Probation_Period_Months"
	FieldProbationEnd     Field = "Probation_End_Date"
	FieldRejoined         Field = "Rejoined"

	FieldFatherName            Field = "Father_Name"
	FieldEmergencyContact      Field = "Emergency_Contact_Number"
	FieldEmergencyRelationship Field = "Emergency_Contact_Relationship"
	FieldBloodGroup            Field = "Blood_Group"

	FieldBasicSalary      Field = "Basic_Salary"
	FieldMedicalAllowance Field = "Medical_Allowance"
	FieldGrossSalary      Field = "Gross_Salary"

	FieldBankName         Field = "Bank_Name"
	FieldBankAccountTitle Field = "Bank_Account_Title"
	FieldNationalTaxNum   Field = "National_Tax_Number"
	FieldSwiftCode        Field = "Swift_Code_BIC"
	FieldAccountIBAN      Field = "Account_Number_IBAN"
	FieldRoutingNumber    Field = "Routing_Number"
	FieldBankCode         Field = "Bank_Code"

	FieldSlackID        Field = "Slack_ID"
	FieldSubmissionTime Field = "Form_Submission_Timestamp"
)

// TempIDPrefix marks synthesized temporary employee identifiers so that
// downstream consumers can filter rows still pending an official ID.
const TempIDPrefix = "TEMP-"

// DefaultFields lists the canonical fields in their output column order.
func DefaultFields() []Field {
	return []Field{
		FieldEmployeeID,
		FieldFullName,
		FieldOfficialEmail,
		FieldPersonalEmail,
		FieldNationalID,
		FieldContactNumber,
		FieldDateOfBirth,
		FieldGender,
		FieldCurrentAddress,
		FieldPermanentAddress,
		FieldNationality,
		FieldLinkedInURL,
		FieldMaritalStatus,
		FieldJoiningDate,
		FieldDepartment,
		FieldDesignation,
		FieldReportingManager,
		FieldJobType,
		FieldJobLocation,
		FieldRecruiterName,
		FieldEmploymentStatus,
		FieldEmploymentEnd,
		FieldProbationMonths,
		FieldProbationEnd,
		FieldRejoined,
		FieldFatherName,
		FieldEmergencyContact,
		FieldEmergencyRelationship,
		FieldBloodGroup,
		FieldBasicSalary,
		FieldMedicalAllowance,
		FieldGrossSalary,
		FieldBankName,
		FieldBankAccountTitle,
		FieldNationalTaxNum,
		FieldSwiftCode,
		FieldAccountIBAN,
		FieldRoutingNumber,
		FieldBankCode,
		FieldSlackID,
		FieldSubmissionTime,
	}
}
