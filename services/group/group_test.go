// File: services/group/group_test.go
package group

import (
	"errors"
	"testing"
	"time"

	"letslink/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeGroupRepo struct {
	groups  map[string]*models.Group
	members map[string]models.GroupMember // key groupID+":"+userID
	invites map[string]*models.GroupInvite
}

func newFakeGroupRepo() *fakeGroupRepo {
	return &fakeGroupRepo{
		groups:  make(map[string]*models.Group),
		members: make(map[string]models.GroupMember),
		invites: make(map[string]*models.GroupInvite),
	}
}

func (f *fakeGroupRepo) Create(group *models.Group) error {
	f.groups[group.ID] = group
	return nil
}

func (f *fakeGroupRepo) GetByID(id string) (*models.Group, error) {
	return f.groups[id], nil
}

func (f *fakeGroupRepo) GetGroupsForUser(userID string) ([]models.Group, error) {
	var out []models.Group
	for _, m := range f.members {
		if m.UserID == userID {
			if g, ok := f.groups[m.GroupID]; ok {
				out = append(out, *g)
			}
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) AddMember(member *models.GroupMember) error {
	key := member.GroupID + ":" + member.UserID
	// Upsert semantics: joining twice keeps the original row.
	if _, exists := f.members[key]; !exists {
		f.members[key] = *member
	}
	return nil
}

func (f *fakeGroupRepo) RemoveMember(groupID, userID string) error {
	delete(f.members, groupID+":"+userID)
	return nil
}

func (f *fakeGroupRepo) IsMember(groupID, userID string) (bool, error) {
	_, ok := f.members[groupID+":"+userID]
	return ok, nil
}

func (f *fakeGroupRepo) GetMemberProfiles(groupID string) ([]models.MemberProfile, error) {
	var out []models.MemberProfile
	for _, m := range f.members {
		if m.GroupID == groupID {
			out = append(out, models.MemberProfile{UserID: m.UserID, Role: m.Role})
		}
	}
	return out, nil
}

func (f *fakeGroupRepo) CreateInvite(invite *models.GroupInvite) error {
	f.invites[invite.Token] = invite
	return nil
}

func (f *fakeGroupRepo) GetInviteByToken(token string) (*models.GroupInvite, error) {
	return f.invites[token], nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(user *models.User) error { f.users[user.ID] = user; return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (f *fakeUserRepo) Delete(id string) error                             { delete(f.users, id); return nil }

func newTestGroupService() (*DefaultGroupService, *fakeGroupRepo, *fakeUserRepo) {
	gr := newFakeGroupRepo()
	ur := &fakeUserRepo{users: make(map[string]*models.User)}
	return &DefaultGroupService{Repo: gr, UserRepo: ur}, gr, ur
}

func TestCreateGroupEnrollsCreatorAsAdmin(t *testing.T) {
	svc, repo, _ := newTestGroupService()

	grp, err := svc.CreateGroup("u1", "Ski crew")
	if err != nil {
		t.Fatal(err)
	}
	if grp.OwnerID != "u1" {
		t.Errorf("owner = %s, want u1", grp.OwnerID)
	}

	m, ok := repo.members[grp.ID+":u1"]
	if !ok {
		t.Fatal("creator not enrolled as member")
	}
	if m.Role != "admin" {
		t.Errorf("creator role = %s, want admin", m.Role)
	}
}

func TestCreateGroupRequiresName(t *testing.T) {
	svc, _, _ := newTestGroupService()
	if _, err := svc.CreateGroup("u1", "   "); err == nil {
		t.Fatal("blank name should be rejected")
	}
}

func TestJoinByInviteRequiresCompleteProfile(t *testing.T) {
	svc, repo, users := newTestGroupService()
	users.users["u2"] = &models.User{ID: "u2", Email: "u2@example.com"} // no names

	grp, _ := svc.CreateGroup("u1", "Ski crew")
	repo.invites["tok"] = &models.GroupInvite{
		GroupID:   grp.ID,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if _, err := svc.JoinByInvite("tok", "u2"); !errors.Is(err, ErrProfileIncomplete) {
		t.Fatalf("expected ErrProfileIncomplete, got %v", err)
	}
	if ok, _ := repo.IsMember(grp.ID, "u2"); ok {
		t.Error("incomplete profile was enrolled anyway")
	}
}

func TestJoinByInviteIsIdempotent(t *testing.T) {
	svc, repo, users := newTestGroupService()
	users.users["u2"] = &models.User{ID: "u2", FirstName: "Ada", Surname: "Lovelace"}

	grp, _ := svc.CreateGroup("u1", "Ski crew")
	repo.invites["tok"] = &models.GroupInvite{
		GroupID:   grp.ID,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	if _, err := svc.JoinByInvite("tok", "u2"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.JoinByInvite("tok", "u2"); err != nil {
		t.Fatalf("second redemption should be a no-op, got %v", err)
	}

	m := repo.members[grp.ID+":u2"]
	if m.Role != "member" {
		t.Errorf("joiner role = %s, want member", m.Role)
	}
}

func TestJoinByInviteRejectsExpiredToken(t *testing.T) {
	svc, repo, users := newTestGroupService()
	users.users["u2"] = &models.User{ID: "u2", FirstName: "Ada", Surname: "Lovelace"}

	grp, _ := svc.CreateGroup("u1", "Ski crew")
	repo.invites["old"] = &models.GroupInvite{
		GroupID:   grp.ID,
		Token:     "old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	if _, err := svc.JoinByInvite("old", "u2"); !errors.Is(err, ErrInviteExpired) {
		t.Fatalf("expected ErrInviteExpired, got %v", err)
	}
}

func TestJoinByInviteUnknownToken(t *testing.T) {
	svc, _, users := newTestGroupService()
	users.users["u2"] = &models.User{ID: "u2", FirstName: "Ada", Surname: "Lovelace"}

	if _, err := svc.JoinByInvite("nope", "u2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateInviteRequiresMembership(t *testing.T) {
	svc, _, _ := newTestGroupService()
	grp, _ := svc.CreateGroup("u1", "Ski crew")

	if _, err := svc.CreateInvite(grp.ID, "outsider"); !errors.Is(err, ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}
}

func TestLeaveGroup(t *testing.T) {
	svc, repo, _ := newTestGroupService()
	grp, _ := svc.CreateGroup("u1", "Ski crew")

	if err := svc.LeaveGroup(grp.ID, "u1"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := repo.IsMember(grp.ID, "u1"); ok {
		t.Error("membership row still present after leaving")
	}
}
