package testutil

// WithStandardCatalog adds a small catalog with one full course:
//
//	CS101 Intro to Programming   3 credits, capacity 2, student1 + student2 (full)
//	MA201 Calculus II            4 credits, capacity 30, student1
//	PH150 Physics for Engineers  4 credits, capacity 25, empty
func (b *Builder) WithStandardCatalog() *Builder {
	return b.
		WithCourse("CS101",
			Title("Intro to Programming"), Description("Variables, loops and functions"),
			Credits(3), Capacity(2)).
		WithCourse("MA201",
			Title("Calculus II"), Description("Integration techniques and series"),
			Credits(4), Capacity(30)).
		WithCourse("PH150",
			Title("Physics for Engineers"), Description("Mechanics and waves"),
			Credits(4), Capacity(25)).
		WithEnrollment("student1", "CS101").
		WithEnrollment("student2", "CS101").
		WithEnrollment("student1", "MA201")
}
