// Package bank holds the static assessment catalog and its question banks.
// Everything here is fixed at build time and read-only at runtime.
package bank

import (
	"github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/models"
)

var catalog = []models.Assessment{
	{ID: 1, Title: "Python Basics", Category: "Technical", DurationLabel: "30 mins", QuestionCount: 20, Difficulty: models.DifficultyEasy},
	{ID: 2, Title: "React Fundamentals", Category: "Technical", DurationLabel: "45 mins", QuestionCount: 30, Difficulty: models.DifficultyMedium},
	{ID: 3, Title: "Node.js & Express", Category: "Technical", DurationLabel: "60 mins", QuestionCount: 40, Difficulty: models.DifficultyHard},
	{ID: 4, Title: "JavaScript Advanced", Category: "Technical", DurationLabel: "50 mins", QuestionCount: 35, Difficulty: models.DifficultyHard},
	{ID: 5, Title: "CSS Grid & Flexbox", Category: "Technical", DurationLabel: "30 mins", QuestionCount: 25, Difficulty: models.DifficultyMedium},
	{ID: 6, Title: "SQL Fundamentals", Category: "Technical", DurationLabel: "40 mins", QuestionCount: 25, Difficulty: models.DifficultyMedium},
	{ID: 7, Title: "Communication 101", Category: "Soft Skills", DurationLabel: "20 mins", QuestionCount: 15, Difficulty: models.DifficultyEasy},
	{ID: 8, Title: "Teamwork & Collaboration", Category: "Soft Skills", DurationLabel: "25 mins", QuestionCount: 20, Difficulty: models.DifficultyMedium},
	{ID: 9, Title: "Problem Solving", Category: "Soft Skills", DurationLabel: "45 mins", QuestionCount: 10, Difficulty: models.DifficultyHard},
}

var questions = map[int64][]models.Question{
	1: { // Python Basics
		{ID: 1, Text: "What is the output of print(2 ** 3)?", Options: []string{"6", "8", "9", "12"}, CorrectIndex: 1},
		{ID: 2, Text: "Which keyword is used to define a function in Python?", Options: []string{"func", "def", "function", "define"}, CorrectIndex: 1},
		{ID: 3, Text: "What data type is the object below? L = [1, 23, 'hello', 1]", Options: []string{"List", "Dictionary", "Tuple", "Array"}, CorrectIndex: 0},
		{ID: 4, Text: "How do you insert COMMENTS in Python code?", Options: []string{"/* This is a comment */", "// This is a comment", "# This is a comment", "<!-- This is a comment -->"}, CorrectIndex: 2},
		{ID: 5, Text: "Which method can be used to return a string in upper case letters?", Options: []string{"upperCase()", "uppercase()", "upper()", "toUpper()"}, CorrectIndex: 2},
	},
	2: { // React Fundamentals
		{ID: 1, Text: "What is the correct command to create a new React project?", Options: []string{"npm create-react-app my-app", "npx create-react-app my-app", "npm create-react-app", "npx create-new-react-app"}, CorrectIndex: 1},
		{ID: 2, Text: "Which hook is used to handle side effects in functional components?", Options: []string{"useState", "useEffect", "useContext", "useReducer"}, CorrectIndex: 1},
		{ID: 3, Text: "What is the default port for the webpack development server?", Options: []string{"3000", "8080", "3306", "5000"}, CorrectIndex: 0},
		{ID: 4, Text: "How do you pass data to a child component?", Options: []string{"State", "Props", "Context", "Redux"}, CorrectIndex: 1},
		{ID: 5, Text: "What is JSX?", Options: []string{"JavaScript XML", "Java Syntax Extension", "JSON XML", "JavaScript Extension"}, CorrectIndex: 0},
	},
	3: { // Node.js & Express
		{ID: 1, Text: "Which core module is used for file operations in Node.js?", Options: []string{"fs", "http", "path", "os"}, CorrectIndex: 0},
		{ID: 2, Text: "What does 'npm' stand for?", Options: []string{"Node Project Manager", "Node Package Manager", "New Project Manager", "Node Program Manager"}, CorrectIndex: 1},
		{ID: 3, Text: "Which framework is commonly used with Node.js for building web APIs?", Options: []string{"Django", "Flask", "Express", "Spring"}, CorrectIndex: 2},
		{ID: 4, Text: "How do you import a module in Node.js (CommonJS)?", Options: []string{"import module from 'module'", "require('module')", "include 'module'", "using module"}, CorrectIndex: 1},
		{ID: 5, Text: "Which event is emitted when an unhandled exception occurs?", Options: []string{"error", "exception", "uncaughtException", "fail"}, CorrectIndex: 2},
	},
	4: { // JavaScript Advanced
		{ID: 1, Text: "What is a closure?", Options: []string{"A function inside another function that has access to the outer function's variables", "A function that is closed for modification", "A method to close a browser window", "A variable that cannot be changed"}, CorrectIndex: 0},
		{ID: 2, Text: "What is the output of '2' + 2?", Options: []string{"4", "22", "NaN", "Error"}, CorrectIndex: 1},
		{ID: 3, Text: "Which keyword is used to declare a variable that cannot be reassigned?", Options: []string{"var", "let", "const", "static"}, CorrectIndex: 2},
		{ID: 4, Text: "What does 'this' refer to in an arrow function?", Options: []string{"The global object", "The function itself", "The object that invoked it", "The lexically enclosing context"}, CorrectIndex: 3},
		{ID: 5, Text: "What is a Promise in JavaScript?", Options: []string{"A guarantee that code will run", "An object representing the eventual completion or failure of an asynchronous operation", "A function that runs immediately", "A strict mode feature"}, CorrectIndex: 1},
	},
	5: { // CSS Grid & Flexbox
		{ID: 1, Text: "Which property is used to define a flex container?", Options: []string{"display: grid", "display: flex", "display: block", "position: absolute"}, CorrectIndex: 1},
		{ID: 2, Text: "How do you center an item horizontally and vertically in Flexbox?", Options: []string{"justify-content: center; align-items: center;", "text-align: center; vertical-align: middle;", "margin: auto;", "position: center;"}, CorrectIndex: 0},
		{ID: 3, Text: "Which property controls the direction of flex items?", Options: []string{"flex-flow", "flex-direction", "flex-wrap", "justify-content"}, CorrectIndex: 1},
		{ID: 4, Text: "What is the gap property used for?", Options: []string{"Adding space between grid/flex items", "Adding padding to the container", "Adding margin to the body", "Creating a gap in the border"}, CorrectIndex: 0},
		{ID: 5, Text: "Which value of 'display' turns an element into a grid container?", Options: []string{"flex", "block", "grid", "inline-grid"}, CorrectIndex: 2},
	},
	6: { // SQL Fundamentals
		{ID: 1, Text: "Which SQL statement is used to extract data from a database?", Options: []string{"GET", "OPEN", "SELECT", "EXTRACT"}, CorrectIndex: 2},
		{ID: 2, Text: "Which SQL clause is used to filter records?", Options: []string{"WHERE", "FILTER", "HAVING", "GROUP BY"}, CorrectIndex: 0},
		{ID: 3, Text: "Which keyword is used to sort the result-set?", Options: []string{"ORDER BY", "SORT BY", "GROUP BY", "ALIGN"}, CorrectIndex: 0},
		{ID: 4, Text: "How do you insert a new record into the 'Users' table?", Options: []string{"ADD INTO Users...", "INSERT INTO Users...", "UPDATE Users...", "CREATE Users..."}, CorrectIndex: 1},
		{ID: 5, Text: "What does SQL stand for?", Options: []string{"Structured Question Language", "Structured Query Language", "Strong Question Language", "Structured Query List"}, CorrectIndex: 1},
	},
	7: { // Communication 101
		{ID: 1, Text: "What is active listening?", Options: []string{"Listening while doing something else", "Fully concentrating on what is being said rather than just hearing the message", "Listening only to the important parts", "Interrupting to ask questions"}, CorrectIndex: 1},
		{ID: 2, Text: "Which of these is a form of non-verbal communication?", Options: []string{"Email", "Phone call", "Body language", "Text message"}, CorrectIndex: 2},
		{ID: 3, Text: "When giving feedback, it is best to be:", Options: []string{"Vague and general", "Specific and constructive", "Harsh and critical", "Silent"}, CorrectIndex: 1},
		{ID: 4, Text: "What is the 7-38-55 rule?", Options: []string{"A rule for time management", "A rule about communication elements (Words, Tone, Body Language)", "A rule for salary negotiation", "A rule for team size"}, CorrectIndex: 1},
		{ID: 5, Text: "Which is a barrier to effective communication?", Options: []string{"Clarity", "Active listening", "Noise/Distractions", "Feedback"}, CorrectIndex: 2},
	},
	8: { // Teamwork & Collaboration
		{ID: 1, Text: "What is a key benefit of teamwork?", Options: []string{"More arguments", "Slower decision making", "Diverse perspectives and ideas", "Less work for everyone"}, CorrectIndex: 2},
		{ID: 2, Text: "What is the best way to handle conflict in a team?", Options: []string{"Ignore it", "Address it openly and respectfully", "Complain to the manager", "Quit the team"}, CorrectIndex: 1},
		{ID: 3, Text: "What does 'psychological safety' mean in a team?", Options: []string{"Safety from physical harm", "Feeling safe to take risks and be vulnerable without fear of punishment", "Mental health benefits", "Security clearance"}, CorrectIndex: 1},
		{ID: 4, Text: "Which tool is commonly used for team collaboration?", Options: []string{"Notepad", "Slack/Teams", "Calculator", "Paint"}, CorrectIndex: 1},
		{ID: 5, Text: "What is a 'stand-up' meeting?", Options: []string{"A meeting where everyone must stand", "A short daily update meeting", "A comedy show", "A meeting about posture"}, CorrectIndex: 1},
	},
	9: { // Problem Solving
		{ID: 1, Text: "What is the first step in the problem-solving process?", Options: []string{"Implement a solution", "Define the problem", "Brainstorm ideas", "Evaluate results"}, CorrectIndex: 1},
		{ID: 2, Text: "What is 'Root Cause Analysis'?", Options: []string{"Finding the person to blame", "Identifying the underlying cause of a problem", "Analyzing tree roots", "Solving math problems"}, CorrectIndex: 1},
		{ID: 3, Text: "What is the '5 Whys' technique used for?", Options: []string{"Asking questions until someone gets annoyed", "Drilling down to the root cause of a problem", "Interviewing candidates", "Teaching children"}, CorrectIndex: 1},
		{ID: 4, Text: "Which mindset helps in problem solving?", Options: []string{"Fixed mindset", "Growth mindset", "Negative mindset", "Closed mindset"}, CorrectIndex: 1},
		{ID: 5, Text: "What should you do after implementing a solution?", Options: []string{"Forget about it", "Monitor and evaluate the results", "Create a new problem", "Celebrate immediately"}, CorrectIndex: 1},
	},
}

// Assessments returns the catalog in its defined order. The returned slice is
// a copy; callers may not mutate the catalog.
func Assessments() []models.Assessment {
	out := make([]models.Assessment, len(catalog))
	copy(out, catalog)
	return out
}

// Assessment returns the catalog entry for the given id.
func Assessment(id int64) (models.Assessment, error) {
	for _, a := range catalog {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Assessment{}, errors.NewNotFoundError("assessment", id)
}

// Questions returns the ordered question list for one assessment. The slice
// is a fresh copy so a session may reorder it freely.
func Questions(assessmentID int64) ([]models.Question, error) {
	qs, ok := questions[assessmentID]
	if !ok {
		return nil, errors.NewNotFoundError("assessment", assessmentID)
	}
	out := make([]models.Question, len(qs))
	copy(out, qs)
	return out, nil
}
