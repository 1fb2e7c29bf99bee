package routes

import (
	"context"
	"errors"
	"sync"

	"github.com/meinhoongagan/clinic-scheduler/models"
	"github.com/meinhoongagan/clinic-scheduler/utils"
)

// memStore mirrors store.Store in memory.
type memStore struct {
	mu           sync.Mutex
	users        []models.User
	doctors      []models.Doctor
	appointments []models.Appointment
	nextID       map[string]uint
	failWith     error
}

func newMemStore() *memStore {
	return &memStore{nextID: map[string]uint{}}
}

func (m *memStore) id(table string) uint {
	m.nextID[table]++
	return m.nextID[table]
}

func (m *memStore) Ping(ctx context.Context) error {
	return m.failWith
}

func (m *memStore) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return &utils.ConflictError{Message: "Username already exists"}
		}
	}
	u.ID = m.id("user")
	m.users = append(m.users, *u)
	return nil
}

func (m *memStore) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, &utils.NotFoundError{Resource: "User"}
}

func (m *memStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	return append([]models.Doctor{}, m.doctors...), nil
}

func (m *memStore) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = m.id("doctor")
	m.doctors = append(m.doctors, *d)
	return nil
}

func (m *memStore) UpdateDoctor(ctx context.Context, d *models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.doctors {
		if m.doctors[i].ID == d.ID {
			m.doctors[i] = *d
			return nil
		}
	}
	return &utils.NotFoundError{Resource: "Doctor"}
}

func (m *memStore) DeleteDoctor(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.doctors {
		if m.doctors[i].ID == id {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return nil
		}
	}
	return &utils.NotFoundError{Resource: "Doctor"}
}

func (m *memStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Appointment{}, m.appointments...), nil
}

func (m *memStore) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	for _, d := range m.doctors {
		if d.ID == a.DoctorID {
			found = true
			break
		}
	}
	if !found {
		return &utils.NotFoundError{Resource: "Doctor"}
	}
	a.ID = m.id("appointment")
	m.appointments = append(m.appointments, *a)
	return nil
}

var errDown = errors.New("dial tcp 127.0.0.1:5432: connection refused")

func modelsUser(username, hash string) models.User {
	return models.User{ID: 100, Username: username, PasswordHash: hash}
}
