package http

// submissionForm mirrors the upload form fields. It is echoed back into
// the template on validation errors so the visitor's input survives.
type submissionForm struct {
	ProjectName string `form:"projectName"`
	ProjectLink string `form:"projectLink"`
	StudentName string `form:"studentName"`
	TeacherName string `form:"teacherName"`
	ModuleName  string `form:"moduleName"`
}
