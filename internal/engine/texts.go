package engine

// User-visible texts. Kept together so wording changes touch one file.

const (
	WelcomeMessage = "Привет! Я бот VK Education Projects.\n" +
		"Помогу подобрать учебный проект, отвечу на частые вопросы " +
		"и покажу контактную информацию.\n" +
		"Выбирайте действие кнопками ниже 👇"

	DefaultFallbackMessage = "Я не нашёл ответа 🤔. Попробуйте переформулировать вопрос " +
		"или воспользуйтесь кнопками меню."

	ErrorFallbackMessage = "Ой, что-то пошло не так на моей стороне. Попробуй написать 'Начать' или 'Старт' "

	ContactsText = "Если возникли трудности:\n" +
		"• Пишите на info@education.vk.company\n" +
		"• Или задайте вопрос в сообществе VK Education - vk.com/vkeducation\n\n" +
		"• Сайт VK Education:\n https://education.vk.company/\n" +
		"• Сайт VK Education Projects:\n https://education.vk.company/education_projects/\n"

	BadWordsWarning = "Пожалуйста, без ненормативной лексики 🙂"

	mainMenuPrompt  = "Вы в главном меню. Выберите действие:"
	findMenuPrompt  = "Как будем искать проекты?"
	chooseDirection = "Выберите направление:"
	chooseDuration  = "Выберите длительность:"
	faqIntro        = "Выберите вопрос, кликнув по нему 👇"
	projectNotFound = "Проект не найден 🤷‍♂️"
)

// greetings are matched literally against the normalized message, including
// the common wrong-layout spellings of "привет" and "начать".
var greetings = map[string]struct{}{
	"привет":     {},
	"здравствуй": {},
	"начать":     {},
	"start":      {},
	"старт":      {},
	"hi":         {},
	"ghbdtn":     {},
	"yfxfnm":     {},
}
