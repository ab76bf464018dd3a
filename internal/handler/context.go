package handler

type ContextKey string

var (
	RoleCtxKey          ContextKey = "role"
	SubCtxKey           ContextKey = "sub"
	MyInfoCtx           ContextKey = "myInfo"
	UserInfoCtx         ContextKey = "userInfo"
	WeekAvailabilityCtx ContextKey = "weekAvailability"
	LeaveRequestCtx     ContextKey = "leaveRequest"
	CostCtx             ContextKey = "cost"
	TaskCtx             ContextKey = "task"
	RecruitmentLeadCtx  ContextKey = "recruitmentLead"
)
