package models

// DashboardStats holds summary numbers for the learner dashboard
type DashboardStats struct {
	CoursesEnrolled  int `json:"coursesEnrolled"`
	CoursesCompleted int `json:"coursesCompleted"`
	LessonsCompleted int `json:"lessonsCompleted"`

	// TimeSpent is the total time spent on lessons in seconds
	TimeSpent int `json:"timeSpent"`
}

// DashboardCourse represents one enrolled course on the dashboard
type DashboardCourse struct {
	EnrollmentWithCourse
	ContinueLesson *LessonNavItem `json:"continueLesson,omitempty"`
}

// DashboardResponse represents the learner dashboard
type DashboardResponse struct {
	Stats   DashboardStats    `json:"stats"`
	Courses []DashboardCourse `json:"courses"`
}
