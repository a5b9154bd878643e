package mockdata

import "aps-backend/internal/model"

var sectors = []model.Sector{
	{ID: "tech", Name: "Technology", Description: "Software, IT, and tech roles"},
	{ID: "healthcare", Name: "Healthcare", Description: "Medical and healthcare positions"},
	{ID: "finance", Name: "Finance", Description: "Banking, accounting, and finance"},
	{ID: "education", Name: "Education", Description: "Teaching and training roles"},
	{ID: "retail", Name: "Retail", Description: "Sales and retail positions"},
	{ID: "manufacturing", Name: "Manufacturing", Description: "Production and manufacturing"},
}

var designations = []model.Designation{
	{ID: "software-dev", Name: "Software Developer", SectorID: "tech"},
	{ID: "frontend-dev", Name: "Frontend Developer", SectorID: "tech"},
	{ID: "backend-dev", Name: "Backend Developer", SectorID: "tech"},
	{ID: "fullstack-dev", Name: "Full Stack Developer", SectorID: "tech"},
	{ID: "data-scientist", Name: "Data Scientist", SectorID: "tech"},
	{ID: "devops-engineer", Name: "DevOps Engineer", SectorID: "tech"},

	{ID: "nurse", Name: "Registered Nurse", SectorID: "healthcare"},
	{ID: "doctor", Name: "Doctor", SectorID: "healthcare"},
	{ID: "pharmacist", Name: "Pharmacist", SectorID: "healthcare"},
	{ID: "medical-tech", Name: "Medical Technician", SectorID: "healthcare"},

	{ID: "accountant", Name: "Accountant", SectorID: "finance"},
	{ID: "financial-analyst", Name: "Financial Analyst", SectorID: "finance"},
	{ID: "bank-manager", Name: "Bank Manager", SectorID: "finance"},

	{ID: "teacher", Name: "Teacher", SectorID: "education"},
	{ID: "professor", Name: "Professor", SectorID: "education"},
	{ID: "trainer", Name: "Corporate Trainer", SectorID: "education"},
}

// Cities served by the job board, in generation order
var Cities = []string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Pune"}

var areas = map[string][]string{
	"Mumbai":    {"Andheri", "Bandra", "Powai", "Lower Parel"},
	"Delhi":     {"Connaught Place", "Gurgaon", "Noida", "Dwarka"},
	"Bangalore": {"Koramangala", "Whitefield", "Electronic City", "HSR Layout"},
	"Hyderabad": {"Hitech City", "Gachibowli", "Madhapur", "Secunderabad"},
	"Chennai":   {"Anna Nagar", "T. Nagar", "Velachery", "OMR"},
	"Pune":      {"Hinjewadi", "Koregaon Park", "Viman Nagar", "Kharadi"},
}

var keywords = map[string][]string{
	"tech":          {"JavaScript", "React", "Node.js", "Python", "Java", "AWS", "Docker", "MongoDB"},
	"healthcare":    {"Patient Care", "Medical Records", "Clinical", "Nursing", "Emergency Care"},
	"finance":       {"Accounting", "Financial Analysis", "Excel", "SAP", "Audit", "Taxation"},
	"education":     {"Teaching", "Curriculum", "Student Management", "Training", "Assessment"},
	"retail":        {"Sales", "Customer Service", "Inventory", "POS", "Merchandising"},
	"manufacturing": {"Production", "Quality Control", "Lean Manufacturing", "Safety", "Machinery"},
}

var genericKeywords = []string{"General", "Communication", "Teamwork", "Problem Solving"}

var candidateNames = []string{"John Doe", "Jane Smith", "Rahul Kumar", "Priya Sharma", "Michael Johnson", "Sarah Wilson"}

var generatedStatuses = []model.ResumeStatus{
	model.ResumeStatusPending,
	model.ResumeStatusApproved,
	model.ResumeStatusRejected,
	model.ResumeStatusUnderReview,
}

var activityActions = []string{"uploaded resume", "approved candidate", "rejected application", "updated settings"}

var activityUsers = []string{"Rajesh Kumar", "Sneha Patel", "Admin User"}
