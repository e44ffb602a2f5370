package certificate

import (
	"sort"
	"sync"
	"time"

	certModels "techclass/models/certificate"

	"gorm.io/datatypes"
)

// memStore is an in-memory Store used by the lifecycle and gateway tests.
// It enforces the same uniqueness and active-scoping rules as the GORM store
// and can be told to fail a number of creates with ErrDuplicateIdentifier to
// exercise the issuance retry path.
type memStore struct {
	mu   sync.Mutex
	seq  uint
	rows map[uint]certModels.Certificate

	failCreates    int
	createAttempts []certModels.Certificate
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[uint]certModels.Certificate)}
}

func (m *memStore) Create(cert *certModels.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.createAttempts = append(m.createAttempts, *cert)

	if m.failCreates > 0 {
		m.failCreates--
		return ErrDuplicateIdentifier
	}

	for _, row := range m.rows {
		if row.CertificateID == cert.CertificateID || row.VerificationCode == cert.VerificationCode {
			return ErrDuplicateIdentifier
		}
	}

	m.seq++
	cert.ID = m.seq
	cert.CreatedAt = time.Now()
	cert.UpdatedAt = cert.CreatedAt
	m.rows[cert.ID] = *cert
	return nil
}

func (m *memStore) FindByKey(id uint) (*certModels.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (m *memStore) FindByCertificateID(certificateID string) (*certModels.Certificate, error) {
	return m.findActive(func(row certModels.Certificate) bool {
		return row.CertificateID == certificateID
	})
}

func (m *memStore) FindByVerificationCode(code string) (*certModels.Certificate, error) {
	return m.findActive(func(row certModels.Certificate) bool {
		return row.VerificationCode == code
	})
}

func (m *memStore) findActive(match func(certModels.Certificate) bool) (*certModels.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if row.IsActive && match(row) {
			cp := row
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) List(filter ListFilter, page, limit int) ([]certModels.Certificate, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var matched []certModels.Certificate
	for _, row := range m.rows {
		if filter.CourseID != 0 && row.CourseID != filter.CourseID {
			continue
		}
		if filter.UserID != 0 && row.UserID != filter.UserID {
			continue
		}
		if filter.Verified != nil && row.IsVerified != *filter.Verified {
			continue
		}
		if filter.Active != nil {
			if row.IsActive != *filter.Active {
				continue
			}
		} else if !filter.IncludeInactive && !row.IsActive {
			continue
		}
		matched = append(matched, row)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CompletionDate.After(matched[j].CompletionDate)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func (m *memStore) Update(id uint, patch UpdatePatch) (*certModels.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}

	if patch.CertificateID != nil {
		row.CertificateID = *patch.CertificateID
	}
	if patch.VerificationCode != nil {
		row.VerificationCode = *patch.VerificationCode
	}
	if patch.CourseName != nil {
		row.CourseName = *patch.CourseName
	}
	if patch.StudentName != nil {
		row.StudentName = *patch.StudentName
	}
	if patch.StudentEmail != nil {
		row.StudentEmail = *patch.StudentEmail
	}
	if patch.CompletionDate != nil {
		row.CompletionDate = *patch.CompletionDate
	}
	if patch.IssuedBy != nil {
		row.IssuedBy = *patch.IssuedBy
	}
	if patch.Grade != nil {
		row.Grade = *patch.Grade
	}
	if patch.Score != nil {
		row.Score = patch.Score
	}
	if patch.DurationHours != nil {
		row.DurationHours = *patch.DurationHours
	}
	if patch.Skills != nil {
		row.Skills = datatypes.JSONSlice[string](*patch.Skills)
	}
	if patch.IsActive != nil {
		row.IsActive = *patch.IsActive
	}
	if patch.IsVerified != nil {
		row.IsVerified = *patch.IsVerified
	}

	row.UpdatedAt = time.Now()
	m.rows[id] = row
	cp := row
	return &cp, nil
}

func (m *memStore) Deactivate(id uint) (*certModels.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	row.IsActive = false
	row.UpdatedAt = time.Now()
	m.rows[id] = row
	cp := row
	return &cp, nil
}

func (m *memStore) IncrementDownload(certificateID string, at time.Time) (*certModels.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, row := range m.rows {
		if row.IsActive && row.CertificateID == certificateID {
			row.DownloadCount++
			row.DownloadedAt = &at
			m.rows[id] = row
			cp := row
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
