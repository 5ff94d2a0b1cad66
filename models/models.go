// ABOUTME: Data models for DocTalk accounts, health profiles, and API payloads
// ABOUTME: JSON-serializable structures matching the backend's wire format

package models

// TokenPair is the access/refresh credential issued by POST /token/.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// PatientProfile holds the medical fields of an account.
type PatientProfile struct {
	MobileNumber      string  `json:"mobile_number,omitempty"`
	Age               int     `json:"age,omitempty"`
	Weight            float64 `json:"weight,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	BloodGroup        string  `json:"blood_group,omitempty"`
	HasDiabetes       bool    `json:"has_diabetes"`
	HasBloodPressure  bool    `json:"has_blood_pressure"`
	HasCancer         bool    `json:"has_cancer"`
	AnyHarmfulDisease string  `json:"any_harmful_disease,omitempty"`
	MedicalHistory    string  `json:"medical_history,omitempty"`
}

// UserProfile is the GET /profile/ response: identity plus medical profile.
// Profile is nil when the backend has no profile row for the account.
type UserProfile struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Profile  *PatientProfile `json:"profile"`
}

// RegisterRequest is the POST /register/ payload. ConfirmPassword never
// leaves the client; it exists only for local validation.
type RegisterRequest struct {
	Username          string  `json:"username"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	ConfirmPassword   string  `json:"-"`
	MobileNumber      string  `json:"mobile_number,omitempty"`
	Age               int     `json:"age,omitempty"`
	Weight            float64 `json:"weight,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	BloodGroup        string  `json:"blood_group,omitempty"`
	HasDiabetes       bool    `json:"has_diabetes"`
	HasBloodPressure  bool    `json:"has_blood_pressure"`
	HasCancer         bool    `json:"has_cancer"`
	AnyHarmfulDisease string  `json:"any_harmful_disease,omitempty"`
	MedicalHistory    string  `json:"medical_history,omitempty"`
}

// SymptomCheckRequest is the POST /symptom-check/ payload. Symptom order is
// preserved as entered.
type SymptomCheckRequest struct {
	Symptoms []string `json:"symptoms"`
	Age      int      `json:"age"`
	Weight   float64  `json:"weight"`
}

// CandidateCondition is one ranked result from the symptom-check service.
type CandidateCondition struct {
	DiseaseName         string   `json:"disease_name"`
	MatchScore          float64  `json:"match_score"`
	Severity            string   `json:"severity"`
	Recommendation      string   `json:"recommendation"`
	Specialist          string   `json:"specialist"`
	AllopathicMedicines []string `json:"allopathic_medicines"`
	HomeRemedies        []string `json:"home_remedies"`
}

// ReportAnalysis is the POST /report-analyze/ response.
type ReportAnalysis struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	Analysis string `json:"analysis"`
}

// DoctorUser is the nested identity block of a doctor record.
type DoctorUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Doctor is one entry of the GET /doctors/ directory listing.
type Doctor struct {
	ID                  int        `json:"id"`
	User                DoctorUser `json:"user"`
	Specialization      string     `json:"specialization"`
	Qualification       string     `json:"qualification,omitempty"`
	ExperienceYears     int        `json:"experience_years"`
	HospitalAffiliation string     `json:"hospital_affiliation"`
	ConsultationFee     float64    `json:"consultation_fee"`
	Rating              float64    `json:"rating,omitempty"`
	AvailableDays       string     `json:"available_days,omitempty"`
}

// BookingConfirmation is the POST /appointments/book/ response.
type BookingConfirmation struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	AppointmentID int    `json:"appointment_id"`
}

// ChatMessage is one locally held transcript entry. Sender is "user" or "bot".
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
