package adminusers_test

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/tendadmin/internal/app/features/adminusers"
	chainstore "github.com/dalemusser/tendadmin/internal/app/store/chains"
	userstore "github.com/dalemusser/tendadmin/internal/app/store/users"
	"github.com/dalemusser/tendadmin/internal/app/system/search"
	"github.com/dalemusser/tendadmin/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memUsers is an in-memory UserStore. Users are kept in insertion order.
type memUsers struct {
	users  []models.User
	writes int
	err    error
}

func (m *memUsers) Count(context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.users)), nil
}

func (m *memUsers) List(_ context.Context, skip, limit int64) ([]models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return window(m.users, skip, limit), nil
}

func (m *memUsers) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, userstore.ErrNotFound
}

func (m *memUsers) SoftDelete(_ context.Context, id primitive.ObjectID) error {
	return m.update(id, func(u *models.User) { u.IsDeleted = true })
}

func (m *memUsers) SetStatus(_ context.Context, id primitive.ObjectID, status string) error {
	return m.update(id, func(u *models.User) { u.Status = status })
}

func (m *memUsers) update(id primitive.ObjectID, fn func(*models.User)) error {
	for i := range m.users {
		if m.users[i].ID == id {
			fn(&m.users[i])
			m.writes++
			return nil
		}
	}
	return userstore.ErrNotFound
}

func (m *memUsers) Search(_ context.Context, term search.Term, skip, limit int64) ([]models.User, error) {
	return window(m.matching(term), skip, limit), nil
}

func (m *memUsers) CountMatching(_ context.Context, term search.Term) (int64, error) {
	return int64(len(m.matching(term))), nil
}

// matching approximates the store filter on userName only.
func (m *memUsers) matching(term search.Term) []models.User {
	if term.Empty() {
		return m.users
	}
	var out []models.User
	for _, u := range m.users {
		if strings.Contains(strings.ToLower(u.UserName), strings.ToLower(term.Raw)) {
			out = append(out, u)
		}
	}
	return out
}

func window(users []models.User, skip, limit int64) []models.User {
	n := int64(len(users))
	if skip >= n {
		return []models.User{}
	}
	end := skip + limit
	if end > n {
		end = n
	}
	return users[skip:end]
}

// memChains is an in-memory ChainStore. members maps chain name to root
// members; a chain absent from the map has no root node.
type memChains struct {
	chains  []models.Chain
	members map[string]int64
	err     error
}

func (m *memChains) List(context.Context) ([]models.Chain, error) {
	return m.chains, nil
}

func (m *memChains) RootMembers(_ context.Context, c models.Chain) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	n, ok := m.members[c.Name]
	if !ok {
		return 0, chainstore.ErrRootNodeMissing
	}
	return n, nil
}

type auditCall struct {
	event     string
	requestID string
	userID    primitive.ObjectID
	from, to  string
}

type memAudit struct{ calls []auditCall }

func (m *memAudit) UserSoftDeleted(_ context.Context, requestID string, userID primitive.ObjectID) {
	m.calls = append(m.calls, auditCall{event: "soft_delete", requestID: requestID, userID: userID})
}

func (m *memAudit) UserStatusChanged(_ context.Context, requestID string, userID primitive.ObjectID, from, to string) {
	m.calls = append(m.calls, auditCall{event: "status", requestID: requestID, userID: userID, from: from, to: to})
}

var errBoom = errors.New("boom")

func seedUsers(n int) []models.User {
	users := make([]models.User, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, models.User{
			ID:        primitive.NewObjectID(),
			UserName:  "user" + string(rune('a'+i-1)),
			TotalNode: int64(i),
			Status:    "active",
		})
	}
	return users
}

func newStores(users *memUsers, chains *memChains, audit *memAudit) adminusers.Stores {
	s := adminusers.Stores{Users: users, Chains: chains}
	if audit != nil {
		s.Audit = audit
	}
	return s
}
