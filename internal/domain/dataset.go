package domain

// DataSet is what the page renders from. It is populated once per build
// and never mutated afterwards.
type DataSet struct {
	Courses  []Course
	Projects []Project

	// Set when the corresponding sequence came from Fallback().
	CoursesFallback  bool
	ProjectsFallback bool
}

// Degraded reports whether any part of the data set is fallback data.
func (d DataSet) Degraded() bool {
	return d.CoursesFallback || d.ProjectsFallback
}

// FallbackCourses is the single course shown when courses.json cannot be used.
func FallbackCourses() []Course {
	return []Course{
		{
			ID:          "1",
			Title:       "Frontend разработка",
			Platform:    "Яндекс Лицей",
			Image:       "images/cert1.png",
			Description: "Основы веб-разработки, HTML, CSS, JavaScript, создание адаптивных интерфейсов.",
			Skills:      []string{"HTML5", "CSS3", "JavaScript", "Адаптивный дизайн"},
			CourseURL:   "https://yandexlyceum.ru",
		},
	}
}

// FallbackProjects is the single project shown when projects.json cannot be used.
func FallbackProjects() []Project {
	return []Project{
		{
			ID:           "1",
			Title:        "Документооборот в команде",
			Image:        "images/comanda.jpg",
			Description:  "Организация системы документооборота для командной работы с использованием Google Таблиц.",
			Role:         "Аналитик данных",
			Status:       "Завершен",
			Duration:     "1 месяц",
			TeamSize:     4,
			Technologies: []string{"Google Sheets", "Google Forms", "Data Analysis"},
			Features:     []string{"Создание структурированных Google Таблиц", "Оптимизация процессов"},
			Links:        []Link{{Name: "Пример таблицы", URL: "#", Icon: "fab fa-google"}},
		},
	}
}

// Fallback returns a fresh fallback data set with both flags set.
func Fallback() DataSet {
	return DataSet{
		Courses:          FallbackCourses(),
		Projects:         FallbackProjects(),
		CoursesFallback:  true,
		ProjectsFallback: true,
	}
}
