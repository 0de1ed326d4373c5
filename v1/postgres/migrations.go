package postgres

// Migrate runs GORM auto-migration for the provided models.
func (p *Postgres) Migrate(models ...interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.Client.AutoMigrate(models...)
}
