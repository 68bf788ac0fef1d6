package repository

import "github.com/noah-isme/campus-nexus-api/internal/models"

// Seed returns a DB loaded with the stock session data. Every process starts
// from this snapshot; nothing survives a restart.
func Seed() *DB {
	db := Open()

	lec001 := "LEC001"
	lec002 := "LEC002"
	lec004 := "LEC004"

	db.courses = []models.Course{
		{
			ID:            "CS401",
			Name:          "Machine Learning",
			Instructor:    "Dr. Alex Kumar",
			Credits:       4,
			Schedule:      "MWF 9:00-10:00 AM",
			Room:          "CS Building 401",
			Enrolled:      45,
			Capacity:      50,
			Department:    "Computer Science",
			Term:          "Fall 2024",
			Prerequisites: []string{"CS301", "MATH201"},
			Description:   "Introduction to machine learning algorithms and applications.",
			LecturerID:    &lec004,
			Status:        models.CourseStatusAssigned,
		},
		{
			ID:            "CS402",
			Name:          "Software Engineering",
			Instructor:    "Prof. Lisa Wang",
			Credits:       3,
			Schedule:      "TTh 11:00-12:30 PM",
			Room:          "CS Building 302",
			Enrolled:      38,
			Capacity:      40,
			Department:    "Computer Science",
			Term:          "Fall 2024",
			Prerequisites: []string{"CS301"},
			Description:   "Principles and practices of software development.",
			Status:        models.CourseStatusUnassigned,
		},
		{
			ID:            "CS403",
			Name:          "Computer Networks",
			Instructor:    "Dr. Robert Brown",
			Credits:       3,
			Schedule:      "MWF 2:00-3:00 PM",
			Room:          "CS Building 203",
			Enrolled:      25,
			Capacity:      35,
			Department:    "Computer Science",
			Term:          "Fall 2024",
			Prerequisites: []string{"CS201"},
			Description:   "Fundamentals of computer networking and protocols.",
			Status:        models.CourseStatusUnassigned,
		},
		{
			ID:            "MATH301",
			Name:          "Linear Algebra",
			Instructor:    "Dr. Jennifer Taylor",
			Credits:       3,
			Schedule:      "TTh 9:00-10:30 AM",
			Room:          "Math Building 205",
			Enrolled:      30,
			Capacity:      45,
			Department:    "Mathematics",
			Term:          "Fall 2024",
			Prerequisites: []string{"MATH201"},
			Description:   "Vector spaces, matrices, and linear transformations.",
			Status:        models.CourseStatusUnassigned,
		},
	}

	db.enrolled = []models.EnrolledCourse{
		{
			CourseID:   "CS301",
			Name:       "Data Structures and Algorithms",
			Instructor: "Dr. Sarah Johnson",
			Credits:    4,
			Schedule:   "MWF 10:00-11:00 AM",
			Room:       "CS Building 201",
			Progress:   75,
			Grade:      "A-",
		},
		{
			CourseID:   "CS302",
			Name:       "Database Systems",
			Instructor: "Prof. Michael Chen",
			Credits:    3,
			Schedule:   "TTh 2:00-3:30 PM",
			Room:       "CS Building 305",
			Progress:   60,
			Grade:      "B+",
		},
		{
			CourseID:   "MATH201",
			Name:       "Discrete Mathematics",
			Instructor: "Dr. Emily Rodriguez",
			Credits:    3,
			Schedule:   "MWF 1:00-2:00 PM",
			Room:       "Math Building 101",
			Progress:   85,
			Grade:      "A",
		},
	}

	db.lecturers = []models.Lecturer{
		{
			ID:              lec001,
			Name:            "Dr. Sarah Johnson",
			Email:           "sarah.johnson@university.edu",
			Phone:           "+1 (555) 123-4567",
			Department:      "Computer Science",
			Office:          "CS Building 301",
			Specialization:  "Data Structures, Algorithms",
			ExperienceYears: 8,
			Status:          models.LecturerStatusActive,
			CourseIDs:       []string{"CS301", "CS302"},
			MaxCourses:      4,
		},
		{
			ID:              lec002,
			Name:            "Prof. Michael Chen",
			Email:           "michael.chen@university.edu",
			Phone:           "+1 (555) 234-5678",
			Department:      "Computer Science",
			Office:          "CS Building 302",
			Specialization:  "Database Systems, Software Engineering",
			ExperienceYears: 12,
			Status:          models.LecturerStatusActive,
			CourseIDs:       []string{"CS302", "CS401"},
			MaxCourses:      3,
		},
		{
			ID:              "LEC003",
			Name:            "Dr. Emily Rodriguez",
			Email:           "emily.rodriguez@university.edu",
			Phone:           "+1 (555) 345-6789",
			Department:      "Mathematics",
			Office:          "Math Building 201",
			Specialization:  "Discrete Mathematics, Linear Algebra",
			ExperienceYears: 6,
			Status:          models.LecturerStatusActive,
			CourseIDs:       []string{"MATH201"},
			MaxCourses:      4,
		},
		{
			ID:              lec004,
			Name:            "Dr. Alex Kumar",
			Email:           "alex.kumar@university.edu",
			Phone:           "+1 (555) 456-7890",
			Department:      "Computer Science",
			Office:          "CS Building 401",
			Specialization:  "Machine Learning, AI",
			ExperienceYears: 10,
			Status:          models.LecturerStatusActive,
			CourseIDs:       []string{},
			MaxCourses:      3,
		},
	}

	db.assistants = []models.TeachingAssistant{
		{
			ID:           "TA001",
			Name:         "Alex Thompson",
			Email:        "alex.thompson@student.university.edu",
			Phone:        "+1 (555) 111-2222",
			Year:         "PhD - 2nd Year",
			Department:   "Computer Science",
			GPA:          3.9,
			Skills:       []string{"Python", "Java", "Data Structures"},
			Status:       models.AssistantStatusAvailable,
			CourseIDs:    []string{"CS301"},
			MaxCourses:   2,
			HoursPerWeek: 15,
		},
		{
			ID:           "TA002",
			Name:         "Maria Garcia",
			Email:        "maria.garcia@student.university.edu",
			Phone:        "+1 (555) 222-3333",
			Year:         "Masters - 1st Year",
			Department:   "Computer Science",
			GPA:          3.8,
			Skills:       []string{"Database Systems", "SQL", "Web Development"},
			Status:       models.AssistantStatusAvailable,
			CourseIDs:    []string{},
			MaxCourses:   1,
			HoursPerWeek: 10,
		},
		{
			ID:           "TA003",
			Name:         "David Kim",
			Email:        "david.kim@student.university.edu",
			Phone:        "+1 (555) 333-4444",
			Year:         "PhD - 3rd Year",
			Department:   "Mathematics",
			GPA:          4.0,
			Skills:       []string{"Linear Algebra", "Discrete Math", "Statistics"},
			Status:       models.AssistantStatusAvailable,
			CourseIDs:    []string{"MATH201", "MATH301"},
			MaxCourses:   2,
			HoursPerWeek: 20,
		},
		{
			ID:           "TA004",
			Name:         "Sarah Wilson",
			Email:        "sarah.wilson@student.university.edu",
			Phone:        "+1 (555) 444-5555",
			Year:         "Masters - 2nd Year",
			Department:   "Computer Science",
			GPA:          3.85,
			Skills:       []string{"Machine Learning", "Python", "Research Methods"},
			Status:       models.AssistantStatusBusy,
			CourseIDs:    []string{"CS401", "CS402"},
			MaxCourses:   2,
			HoursPerWeek: 20,
		},
	}

	db.staffing = []models.StaffingRequirement{
		{
			CourseID:     "CS301",
			CourseName:   "Data Structures and Algorithms",
			LecturerName: "Dr. Sarah Johnson",
			Students:     45,
			CurrentTAs:   1,
			RequiredTAs:  2,
			Schedule:     "MWF 10:00-11:00 AM",
			LabHours:     "TTh 2:00-4:00 PM",
		},
		{
			CourseID:     "CS302",
			CourseName:   "Database Systems",
			LecturerName: "Prof. Michael Chen",
			Students:     38,
			CurrentTAs:   0,
			RequiredTAs:  1,
			Schedule:     "TTh 2:00-3:30 PM",
			LabHours:     "MWF 3:00-5:00 PM",
		},
		{
			CourseID:     "CS401",
			CourseName:   "Machine Learning",
			LecturerName: "Dr. Alex Kumar",
			Students:     30,
			CurrentTAs:   1,
			RequiredTAs:  1,
			Schedule:     "MWF 9:00-10:00 AM",
			LabHours:     "TTh 10:00-12:00 PM",
		},
		{
			CourseID:     "MATH301",
			CourseName:   "Linear Algebra",
			LecturerName: "Dr. Jennifer Taylor",
			Students:     35,
			CurrentTAs:   1,
			RequiredTAs:  1,
			Schedule:     "TTh 9:00-10:30 AM",
			LabHours:     "MWF 1:00-3:00 PM",
		},
	}

	db.fees = []models.Fee{
		{Category: "Tuition Fee", Amount: 15000, Paid: 15000, DueDate: "2024-08-15"},
		{Category: "Laboratory Fee", Amount: 2500, Paid: 2500, DueDate: "2024-08-15"},
		{Category: "Library Fee", Amount: 500, Paid: 500, DueDate: "2024-08-15"},
		{Category: "Sports Fee", Amount: 1000, Paid: 0, DueDate: "2024-12-15"},
		{Category: "Development Fee", Amount: 3000, Paid: 1500, DueDate: "2024-11-30"},
	}

	db.payments = []models.Payment{
		{ID: "PAY-001", Date: "2024-08-10", Category: "Tuition Fee", Amount: 18000, Method: "Bank Transfer", Status: models.PaymentStatusCompleted, Receipt: "REC-001"},
		{ID: "PAY-002", Date: "2024-09-15", Category: "Development Fee", Amount: 1500, Method: "Credit Card", Status: models.PaymentStatusCompleted, Receipt: "REC-002"},
		{ID: "PAY-003", Date: "2024-10-20", Category: "Laboratory Fee", Amount: 2500, Method: "Online Banking", Status: models.PaymentStatusPending},
	}

	db.students = []models.Student{
		{
			ID:               "STU-2024-001",
			FirstName:        "John",
			LastName:         "Doe",
			Email:            "john.doe@university.edu",
			Phone:            "+1 (555) 123-4567",
			Address:          "123 Campus Drive, University City, UC 12345",
			DateOfBirth:      "1998-05-15",
			Program:          "Computer Science",
			Year:             "3rd Year",
			GPA:              3.85,
			EmergencyContact: "Jane Doe - +1 (555) 987-6543",
		},
	}

	return db
}
