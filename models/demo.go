// ABOUTME: Canned demo data substituted when the backend is unreachable
// ABOUTME: Keeps the client demonstrable offline; gated by DOCTALK_DEMO_FALLBACK

package models

// DemoCandidate is rendered by the symptom checker when the backend fails.
func DemoCandidate() CandidateCondition {
	return CandidateCondition{
		DiseaseName:         "Viral Fever (Demo)",
		MatchScore:          85,
		Severity:            "Medium",
		Recommendation:      "Home Remedies & Rest",
		Specialist:          "General Physician",
		AllopathicMedicines: []string{"Paracetamol"},
		HomeRemedies:        []string{"Ginger Tea", "Warm Water"},
	}
}

// DemoDoctors is the roster shown when the directory is unreachable or empty.
func DemoDoctors() []Doctor {
	return []Doctor{
		{ID: 1, User: DoctorUser{FirstName: "Sarah", LastName: "Johnson"}, Specialization: "Cardiologist", ExperienceYears: 12, HospitalAffiliation: "City Heart Center", ConsultationFee: 1500, Rating: 4.8},
		{ID: 2, User: DoctorUser{FirstName: "Rahul", LastName: "Verma"}, Specialization: "General Physician", ExperienceYears: 8, HospitalAffiliation: "DocTalk Clinic", ConsultationFee: 500, Rating: 4.5},
		{ID: 3, User: DoctorUser{FirstName: "Emily", LastName: "Davis"}, Specialization: "Dermatologist", ExperienceYears: 5, HospitalAffiliation: "Skin Care Plus", ConsultationFee: 800, Rating: 4.9},
		{ID: 4, User: DoctorUser{FirstName: "Michael", LastName: "Chen"}, Specialization: "Pediatrician", ExperienceYears: 15, HospitalAffiliation: "Childrens Hospital", ConsultationFee: 1200, Rating: 4.7},
	}
}

// DemoAnalysis is the report analysis shown when the backend fails.
func DemoAnalysis(filename string) ReportAnalysis {
	return ReportAnalysis{
		Filename: filename,
		Analysis: `Analysis of Uploaded Report (` + filename + `):
1. Blood Hemoglobin levels are slightly low (11.2 g/dL). Normal range is 13-17 g/dL.
2. White Blood Cell count is normal.

Recommendations:
- Increase iron-rich food intake.
- Consult a General Physician.`,
	}
}

// DemoChatReply is the bot line shown when a chat request fails.
const DemoChatReply = "Sorry, I'm having trouble connecting to the server."
