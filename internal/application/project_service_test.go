package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

func projMembership(projectID, userID uint, role project.Role) project.Membership {
	return project.Membership{ID: userID, ProjectID: projectID, UserID: userID, Role: role}
}

func TestListProjectsTiers(t *testing.T) {
	t.Run("admins see every project", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.Project.EXPECT().ListProjectsByTeam(uint(1)).Return([]project.Project{{ID: 10}, {ID: 11}}, nil)

		projects, err := svc.ListProjects(7, "acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 2 {
			t.Fatalf("expected 2 projects, got %d", len(projects))
		}
	})

	t.Run("members see only their own", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)
		m.Project.EXPECT().ListProjectsByTeamMember(uint(1), uint(8)).Return([]project.Project{{ID: 10}}, nil)

		projects, err := svc.ListProjects(8, "acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 1 {
			t.Fatalf("expected 1 project, got %d", len(projects))
		}
	})

	t.Run("outsiders get an empty list, never an error", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(9)).Return(team.Membership{}, gorm.ErrRecordNotFound)

		projects, err := svc.ListProjects(9, "acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(projects) != 0 {
			t.Fatalf("expected empty list, got %d", len(projects))
		}
	})
}

func TestProjectDetailHiddenAsNotFound(t *testing.T) {
	t.Run("team outsider", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(9)).Return(team.Membership{}, gorm.ErrRecordNotFound)

		_, err := svc.GetProject(9, "acme", "website")
		if !apperrors.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("team member outside the project", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(8)).Return(project.Membership{}, gorm.ErrRecordNotFound)

		_, err := svc.GetProject(8, "acme", "website")
		if !apperrors.IsNotFound(err) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("project member sees it", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website", Title: "Website"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(8)).Return(projMembership(10, 8, project.RoleDeveloper), nil)

		p, err := svc.GetProject(8, "acme", "website")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Title != "Website" {
			t.Fatalf("expected Website, got %s", p.Title)
		}
	})
}

func TestCreateProject(t *testing.T) {
	t.Run("only team admins may create", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)

		_, err := svc.CreateProject(8, "acme", project.CreateProjectDTO{Title: "Website"})
		if !apperrors.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
	})

	t.Run("manager membership is written with the project", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.Project.EXPECT().ProjectSlugExists(uint(1), "website").Return(false, nil)
		m.User.EXPECT().GetUserByUsername("beth").Return(user.User{ID: 8, Username: "beth"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)
		m.Project.EXPECT().CreateProject(gomock.Any()).Do(func(p *project.Project) {
			p.ID = 10
		}).Return(nil)
		m.ProjectMembership.EXPECT().CreateMembership(gomock.Any()).Do(func(ms *project.Membership) {
			if ms.Role != project.RoleManager {
				t.Fatalf("expected manager role, got %q", ms.Role)
			}
		}).Return(nil)
		m.Project.EXPECT().SetManager(uint(10), gomock.Any()).Return(nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, Slug: "website", Title: "Website"}, nil)

		p, err := svc.CreateProject(7, "acme", project.CreateProjectDTO{Title: "Website", Manager: strPtr("beth")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Slug != "website" {
			t.Fatalf("expected slug website, got %s", p.Slug)
		}
	})

	t.Run("manager outside the team is rejected", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.Project.EXPECT().ProjectSlugExists(uint(1), "website").Return(false, nil)
		m.User.EXPECT().GetUserByUsername("drifter").Return(user.User{ID: 30, Username: "drifter"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(30)).Return(team.Membership{}, gorm.ErrRecordNotFound)

		_, err := svc.CreateProject(7, "acme", project.CreateProjectDTO{Title: "Website", Manager: strPtr("drifter")})
		if !apperrors.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestManagerReassignment(t *testing.T) {
	t.Run("demote and promote happen together", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		oldManager := uint(8)
		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website", ManagerID: &oldManager}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(7)).Return(project.Membership{}, gorm.ErrRecordNotFound)
		m.User.EXPECT().GetUserByUsername("carol").Return(user.User{ID: 9, Username: "carol"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(9)).Return(projMembership(10, 9, project.RoleDeveloper), nil)

		gomock.InOrder(
			m.Project.EXPECT().GetProjectForUpdate(uint(10)).Return(project.Project{ID: 10, TeamID: 1, Slug: "website", ManagerID: &oldManager}, nil),
			m.ProjectMembership.EXPECT().GetManager(uint(10)).Return(projMembership(10, 8, project.RoleManager), nil),
			m.ProjectMembership.EXPECT().UpdateMembership(gomock.Any()).Do(func(ms *project.Membership) {
				if ms.UserID != 8 || ms.Role != project.RoleDeveloper {
					t.Fatalf("previous manager not demoted: %+v", ms)
				}
			}).Return(nil),
			m.ProjectMembership.EXPECT().UpdateMembership(gomock.Any()).Do(func(ms *project.Membership) {
				if ms.UserID != 9 || ms.Role != project.RoleManager {
					t.Fatalf("new manager not promoted: %+v", ms)
				}
			}).Return(nil),
			m.Project.EXPECT().SetManager(uint(10), gomock.Any()).Return(nil),
		)

		if err := svc.MakeManager(7, "acme", "website", "carol"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reassignment through a general update sticks", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		oldManager := uint(8)
		stale := project.Project{
			ID: 10, TeamID: 1, Slug: "website", Title: "Website",
			ManagerID: &oldManager,
			Manager:   &user.User{ID: 8, Username: "beth"},
			Memberships: []project.Membership{
				projMembership(10, 8, project.RoleManager),
				projMembership(10, 9, project.RoleDeveloper),
			},
		}
		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(stale, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(7)).Return(project.Membership{}, gorm.ErrRecordNotFound)
		m.User.EXPECT().GetUserByUsername("carol").Return(user.User{ID: 9, Username: "carol"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(9)).Return(projMembership(10, 9, project.RoleDeveloper), nil)

		gomock.InOrder(
			m.Project.EXPECT().GetProjectForUpdate(uint(10)).Return(project.Project{ID: 10, TeamID: 1, Slug: "website", ManagerID: &oldManager}, nil),
			m.ProjectMembership.EXPECT().GetManager(uint(10)).Return(projMembership(10, 8, project.RoleManager), nil),
			m.ProjectMembership.EXPECT().UpdateMembership(gomock.Any()).Return(nil).Times(2),
			m.Project.EXPECT().SetManager(uint(10), gomock.Any()).Return(nil),
			m.Project.EXPECT().UpdateProject(gomock.Any()).Do(func(p *project.Project) {
				if p.ManagerID == nil || *p.ManagerID != 9 {
					t.Fatalf("saved manager_id does not point at the new manager: %v", p.ManagerID)
				}
				if p.Manager != nil || p.Memberships != nil {
					t.Fatalf("stale preloaded rows must not be written back: %+v", p)
				}
			}).Return(nil),
		)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, Slug: "website", ManagerID: func() *uint { id := uint(9); return &id }()}, nil)

		desc := "refreshed copy"
		updated, err := svc.UpdateProject(7, "acme", "website", project.UpdateProjectDTO{Description: &desc, Manager: strPtr("carol")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ManagerID == nil || *updated.ManagerID != 9 {
			t.Fatalf("expected manager 9 after reload, got %v", updated.ManagerID)
		}
	})

	t.Run("current manager is a no-op", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		manager := uint(8)
		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website", ManagerID: &manager}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(7)).Return(project.Membership{}, gorm.ErrRecordNotFound)
		m.User.EXPECT().GetUserByUsername("beth").Return(user.User{ID: 8, Username: "beth"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(8)).Return(projMembership(10, 8, project.RoleManager), nil)

		if err := svc.MakeManager(7, "acme", "website", "beth"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("a manager may not hand over the slot", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(8)).Return(projMembership(10, 8, project.RoleManager), nil)

		err := svc.MakeManager(8, "acme", "website", "carol")
		if !apperrors.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
		if err.Error() != apperrors.MsgManagerAdminOnly {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})
}

func TestRemoveProjectMemberCascade(t *testing.T) {
	repos, m := newMockRepos(t)
	svc := application.NewProjectService(repos)

	managerID := uint(8)
	m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
	m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
	m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website", ManagerID: &managerID}, nil)
	m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(7)).Return(project.Membership{}, gorm.ErrRecordNotFound)
	m.User.EXPECT().GetUserByUsername("beth").Return(user.User{ID: 8, Username: "beth"}, nil)

	gomock.InOrder(
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(8)).Return(projMembership(10, 8, project.RoleManager), nil),
		m.ProjectMembership.EXPECT().DeleteMembership(uint(10), uint(8)).Return(nil),
		m.Project.EXPECT().SetManager(uint(10), nil).Return(nil),
		m.Ticket.EXPECT().ClearDeveloperForUserInProject(uint(10), uint(8)).Return(nil),
	)

	if err := svc.RemoveMember(7, "acme", "website", "beth"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProjectPermissionsAnswer(t *testing.T) {
	t.Run("non-project member gets all false", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(8)).Return(project.Membership{}, gorm.ErrRecordNotFound)

		perms, err := svc.GetUserPermissions(8, "acme", "website")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if perms.View || perms.Edit || perms.UpdateManager || perms.CreateTickets {
			t.Fatalf("expected all false, got %+v", perms)
		}
	})

	t.Run("manager edits but cannot reassign the slot", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewProjectService(repos)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)
		m.Project.EXPECT().GetProjectBySlug(uint(1), "website").Return(project.Project{ID: 10, TeamID: 1, Slug: "website"}, nil)
		m.ProjectMembership.EXPECT().GetMembership(uint(10), uint(8)).Return(projMembership(10, 8, project.RoleManager), nil)

		perms, err := svc.GetUserPermissions(8, "acme", "website")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !perms.View || !perms.Edit || !perms.CreateTickets {
			t.Fatalf("manager should view, edit and create tickets: %+v", perms)
		}
		if perms.UpdateManager {
			t.Fatalf("manager must not hold update_manager")
		}
	})
}

func strPtr(s string) *string { return &s }
