package postgres

import "context"

// Find retrieves all records matching conditions into dest.
func (p *Postgres) Find(ctx context.Context, dest interface{}, conditions ...interface{}) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Client.WithContext(ctx).Find(dest, conditions...).Error
}

// First retrieves the first record matching conditions, ordered by primary key.
func (p *Postgres) First(ctx context.Context, dest interface{}, conditions ...interface{}) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Client.WithContext(ctx).First(dest, conditions...).Error
}

// Create inserts value as a new record.
func (p *Postgres) Create(ctx context.Context, value interface{}) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Client.WithContext(ctx).Create(value).Error
}

// Save updates all fields of value, inserting it if its primary key is zero.
func (p *Postgres) Save(ctx context.Context, value interface{}) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Client.WithContext(ctx).Save(value).Error
}

// Update applies attrs to the records matched by model.
func (p *Postgres) Update(ctx context.Context, model interface{}, attrs interface{}) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := p.Client.WithContext(ctx).Model(model).Updates(attrs)
	return result.RowsAffected, result.Error
}

// UpdateColumn sets a single column on the records matched by model, skipping hooks and timestamps.
func (p *Postgres) UpdateColumn(ctx context.Context, model interface{}, columnName string, value interface{}) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := p.Client.WithContext(ctx).Model(model).UpdateColumn(columnName, value)
	return result.RowsAffected, result.Error
}

// UpdateColumns sets multiple columns on the records matched by model, skipping hooks and timestamps.
func (p *Postgres) UpdateColumns(ctx context.Context, model interface{}, columnValues map[string]interface{}) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := p.Client.WithContext(ctx).Model(model).UpdateColumns(columnValues)
	return result.RowsAffected, result.Error
}

// UpdateWhere applies attrs to model's table rows matching the raw SQL condition.
func (p *Postgres) UpdateWhere(ctx context.Context, model interface{}, attrs interface{}, condition string, args ...interface{}) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := p.Client.WithContext(ctx).Model(model).Where(condition, args...).Updates(attrs)
	return result.RowsAffected, result.Error
}

// Delete removes records matching value and conditions.
func (p *Postgres) Delete(ctx context.Context, value interface{}, conditions ...interface{}) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := p.Client.WithContext(ctx).Delete(value, conditions...)
	return result.RowsAffected, result.Error
}

// Count stores the number of rows matching model and conditions into count.
func (p *Postgres) Count(ctx context.Context, model interface{}, count *int64, conditions ...interface{}) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	db := p.Client.WithContext(ctx).Model(model)
	if len(conditions) > 0 {
		db = db.Where(conditions[0], conditions[1:]...)
	}
	return db.Count(count).Error
}

// Exec runs a raw SQL statement and reports the number of affected rows.
func (p *Postgres) Exec(ctx context.Context, sql string, values ...interface{}) (int64, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := p.Client.WithContext(ctx).Exec(sql, values...)
	return result.RowsAffected, result.Error
}
