package client

// View is the screen a client should show.
type View int

const (
	ViewLogin View = iota
	ViewLoading
	ViewError
	ViewAdmin
	ViewDashboard
	ViewStore
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewLoading:
		return "loading"
	case ViewError:
		return "error"
	case ViewAdmin:
		return "admin"
	case ViewDashboard:
		return "dashboard"
	case ViewStore:
		return "store"
	default:
		return "unknown"
	}
}

// Route picks the view for st. Loading and load errors win over role pages.
func Route(st State) View {
	if st.User == nil {
		return ViewLogin
	}
	if st.Loading {
		return ViewLoading
	}
	if st.LoadError != nil {
		return ViewError
	}
	switch st.User.Role {
	case RoleAdmin:
		if st.AdminView == AdminDashboard {
			return ViewDashboard
		}
		return ViewAdmin
	case RoleStaff:
		return ViewStore
	default:
		return ViewLogin
	}
}
