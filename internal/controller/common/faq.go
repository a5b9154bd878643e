package common

// FAQ is one help center entry
type FAQ struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// ContactOption is a support channel shown next to the FAQ
type ContactOption struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

var faqs = []FAQ{
	{
		ID:       1,
		Question: "How do I upload a resume?",
		Answer:   `Navigate to the HR Dashboard and click on "Upload Resume". You can drag and drop files or click to browse. Supported formats are PDF and DOCX.`,
		Category: "HR",
	},
	{
		ID:       2,
		Question: "How does the resume parsing work?",
		Answer:   "Our AI-powered system automatically extracts key information like name, email, phone, experience, and skills from uploaded resumes. It then suggests the most appropriate sector and designation.",
		Category: "HR",
	},
	{
		ID:       3,
		Question: "Can I manually override the AI suggestions?",
		Answer:   "Yes, after the AI processes a resume, you can manually select a different sector or designation from the dropdown menus before saving.",
		Category: "HR",
	},
	{
		ID:       4,
		Question: "How do I apply for a job?",
		Answer:   "Browse available positions on the candidate portal, click on a job that interests you, and follow the application process. You'll need to upload your resume and fill out the required information.",
		Category: "Candidate",
	},
	{
		ID:       5,
		Question: "What permissions can I set for HR users?",
		Answer:   "As an admin, you can control HR access to features like CRUD operations, folder management, report generation, and candidate data viewing through the permission matrix.",
		Category: "Admin",
	},
	{
		ID:       6,
		Question: "How do I generate reports?",
		Answer:   "Go to the Reports section in your dashboard. You can generate daily, weekly, or monthly reports with various filters and export them as CSV or PDF.",
		Category: "HR",
	},
}

var contactOptions = []ContactOption{
	{Title: "Live Chat", Description: "Get instant help from our support team", Action: "Start Chat"},
	{Title: "Phone Support", Description: "Call us at +91 1234567890", Action: "Call Now"},
	{Title: "Email Support", Description: "Send us an email at support@akshyapatra.com", Action: "Send Email"},
}
