// File: handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Courses      *CourseHandler
	Kindergarten *KindergartenHandler
	Holidays     *HolidayHandler
	Directory    *DirectoryHandler
}
