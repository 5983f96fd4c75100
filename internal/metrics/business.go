package metrics

// Login attempt results
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
	LoginError   = "error"
)

// IncrementProjectCreated increments project creation counter
func (m *Metrics) IncrementProjectCreated() {
	m.safeExecute("IncrementProjectCreated", func() {
		m.ProjectCreatedTotal.Inc()
	})
}

// IncrementRecipeCreated increments recipe creation counter
func (m *Metrics) IncrementRecipeCreated() {
	m.safeExecute("IncrementRecipeCreated", func() {
		m.RecipeCreatedTotal.Inc()
	})
}

// IncrementImageUploads counts a stored upload for the category ("projects" or "recipes")
func (m *Metrics) IncrementImageUploads(category string) {
	m.safeExecute("IncrementImageUploads", func() {
		m.ImageUploadsTotal.WithLabelValues(category).Inc()
	})
}

// RecordLoginAttempt counts a login by result
func (m *Metrics) RecordLoginAttempt(result string) {
	m.safeExecute("RecordLoginAttempt", func() {
		m.LoginAttemptsTotal.WithLabelValues(result).Inc()
	})
}

// SetProjectsTotal sets total projects gauge
func (m *Metrics) SetProjectsTotal(count int64) {
	m.safeExecute("SetProjectsTotal", func() {
		m.ProjectsTotal.Set(float64(count))
	})
}

// SetRecipesTotal sets total recipes gauge
func (m *Metrics) SetRecipesTotal(count int64) {
	m.safeExecute("SetRecipesTotal", func() {
		m.RecipesTotal.Set(float64(count))
	})
}

// SetUsersTotal sets total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}
