package blogdomain

// CurrentUser é o usuário da sessão devolvido por /api/auth/user/
type CurrentUser struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	IsStaff     *bool  `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// ActionResult é a resposta dos endpoints de ação (expire_old, mark_resolved, send...)
type ActionResult struct {
	Detail       string `json:"detail"`
	Message      string `json:"message"`
	ExpiredCount int    `json:"expired_count"`
	Status       string `json:"status"`
}
