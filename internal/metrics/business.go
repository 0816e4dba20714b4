package metrics

// IncrementUserRegistered increments the user registration counter
func (m *Metrics) IncrementUserRegistered() {
	m.safeExecute("IncrementUserRegistered", func() {
		m.UserRegisteredTotal.Inc()
	})
}

// IncrementPetCreated increments the pet creation counter
func (m *Metrics) IncrementPetCreated() {
	m.safeExecute("IncrementPetCreated", func() {
		m.PetCreatedTotal.Inc()
	})
}

// IncrementDocumentUploaded increments the document upload counter
func (m *Metrics) IncrementDocumentUploaded() {
	m.safeExecute("IncrementDocumentUploaded", func() {
		m.DocumentUploadedTotal.Inc()
	})
}

// SetUsersTotal sets the registered users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetPetsTotal sets the pets gauge
func (m *Metrics) SetPetsTotal(count int64) {
	m.safeExecute("SetPetsTotal", func() {
		m.PetsTotal.Set(float64(count))
	})
}

// SetRemindersPendingTotal sets the pending reminders gauge
func (m *Metrics) SetRemindersPendingTotal(count int64) {
	m.safeExecute("SetRemindersPendingTotal", func() {
		m.RemindersPendingTotal.Set(float64(count))
	})
}
