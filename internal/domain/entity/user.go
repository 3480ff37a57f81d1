package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото ящика с бутылками
	StateProcessing    UserState = "processing"     // Обработка изображения
)

// User представляет пользователя бота
type User struct {
	ID     int64     // Telegram User ID
	ChatID int64     // Telegram Chat ID
	State  UserState // Текущее состояние пользователя
	Method Method    // Выбранный способ подсчёта бутылок
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
		Method: MethodBoth,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// NextMethod переключает способ детекции по кругу
func (u *User) NextMethod() Method {
	switch u.Method {
	case MethodHough:
		u.Method = MethodContour
	case MethodContour:
		u.Method = MethodBoth
	default:
		u.Method = MethodHough
	}
	return u.Method
}
