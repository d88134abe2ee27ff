package dynamo

// Table names. Deployments prefix these via infrastructure, not code.
const (
	TablePatients = "riskengine_patients"
	TablePlans    = "riskengine_plans"
)
