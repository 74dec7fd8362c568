package schema

// Schema names. Each entity collection validates against the schema of
// the same name; jobs validate their request payload (job_request)
// because the stored Job document is synthesized server-side.
const (
	Site              = "site"
	Asset             = "asset"
	JobRequest        = "job_request"
	Invoice           = "invoice"
	Feedback          = "feedback"
	User              = "user"
	AnalyticsSnapshot = "analytics_snapshot"
)

var schemaSources = map[string]string{
	Site: `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name":    {"type": "string", "minLength": 1},
			"address": {"type": ["string", "null"]},
			"city":    {"type": ["string", "null"]},
			"state":   {"type": ["string", "null"]},
			"pincode": {"type": ["string", "null"]}
		}
	}`,

	Asset: `{
		"type": "object",
		"required": ["site_id", "name", "type"],
		"properties": {
			"site_id":       {"type": "string", "minLength": 1},
			"name":          {"type": "string", "minLength": 1},
			"type":          {"type": "string", "minLength": 1},
			"status":        {"type": "string", "enum": ["active", "inactive", "maintenance"]},
			"serial_number": {"type": ["string", "null"]},
			"model":         {"type": ["string", "null"]}
		}
	}`,

	JobRequest: `{
		"type": "object",
		"required": ["service_type", "site_id"],
		"properties": {
			"service_type": {"type": "string", "enum": ["AMC", "Repair", "Installation", "Emergency"]},
			"site_id":      {"type": "string", "minLength": 1},
			"asset_ids":    {"type": "array", "items": {"type": "string"}},
			"description":  {"type": ["string", "null"]},
			"schedule":     {"type": ["string", "null"], "format": "date-time"},
			"media_urls":   {"type": "array", "items": {"type": "string"}}
		}
	}`,

	Invoice: `{
		"type": "object",
		"required": ["job_id", "amount"],
		"properties": {
			"job_id":     {"type": "string", "minLength": 1},
			"amount":     {"type": "number"},
			"due_date":   {"type": ["string", "null"], "format": "date-time"},
			"status":     {"type": "string", "enum": ["unpaid", "paid", "overdue"]},
			"line_items": {"type": "array", "items": {"type": "object"}}
		}
	}`,

	Feedback: `{
		"type": "object",
		"required": ["job_id", "rating_overall"],
		"properties": {
			"job_id":            {"type": "string", "minLength": 1},
			"rating_overall":    {"type": "integer", "minimum": 1, "maximum": 5},
			"rating_engineer":   {"type": ["integer", "null"], "minimum": 1, "maximum": 5},
			"comments":          {"type": ["string", "null"]},
			"request_follow_up": {"type": "boolean"}
		}
	}`,

	User: `{
		"type": "object",
		"properties": {
			"org_name": {"type": ["string", "null"]},
			"name":     {"type": ["string", "null"]},
			"email":    {"type": ["string", "null"], "format": "email"},
			"phone":    {"type": ["string", "null"]},
			"role":     {"type": "string", "enum": ["admin", "manager", "viewer", "technician", "customer"]}
		}
	}`,

	AnalyticsSnapshot: `{
		"type": "object",
		"required": ["month", "jobs_count", "downtime_hours"],
		"properties": {
			"month":                {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}$"},
			"jobs_count":           {"type": "integer", "minimum": 0},
			"downtime_hours":       {"type": "number", "minimum": 0},
			"engineer_performance": {"type": "array", "items": {"type": "object"}}
		}
	}`,
}
