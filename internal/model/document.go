package model

// TeacherConfig настройки одного преподавателя
type TeacherConfig struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Interval int    `json:"interval"` // длина слота в минутах
}

// Settings глобальные настройки документа
type Settings struct {
	Teachers      []TeacherConfig `json:"teachers"`
	AdminPassword string          `json:"adminPassword"`
}

// Claim бронь одного слота. Token выдаётся один раз при создании
// и больше никогда не возвращается через публичные чтения.
type Claim struct {
	Name  string `json:"name"`
	ID    string `json:"id"`
	Token string `json:"token"`
}

// SafeClaim представление брони без секрета
type SafeClaim struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SafeView возвращает бронь без токена
func (c *Claim) SafeView() SafeClaim {
	return SafeClaim{Name: c.Name, ID: c.ID}
}

// SlotMap брони одного преподавателя: время ("16:30") -> бронь.
// Отсутствие ключа означает что слот свободен.
type SlotMap map[string]*Claim

// Document единственный персистентный агрегат: настройки + все брони
type Document struct {
	Settings     Settings           `json:"settings"`
	Reservations map[string]SlotMap `json:"reservations"`
}

// DefaultAdminPassword пароль по умолчанию если настройки пустые
const DefaultAdminPassword = "admin"

// DefaultDocument возвращает пустой документ. Используется всегда
// когда бэкенд недоступен или содержит нечитаемые данные.
func DefaultDocument() *Document {
	return &Document{
		Settings: Settings{
			Teachers:      []TeacherConfig{},
			AdminPassword: DefaultAdminPassword,
		},
		Reservations: map[string]SlotMap{},
	}
}

// Normalize чинит nil-карты после декодирования частичного JSON
func (d *Document) Normalize() {
	if d.Settings.Teachers == nil {
		d.Settings.Teachers = []TeacherConfig{}
	}
	if d.Reservations == nil {
		d.Reservations = map[string]SlotMap{}
	}
	for name, slots := range d.Reservations {
		if slots == nil {
			d.Reservations[name] = SlotMap{}
		}
	}
}

// Slots возвращает карту слотов преподавателя, создавая её при необходимости
func (d *Document) Slots(teacher string) SlotMap {
	slots, ok := d.Reservations[teacher]
	if !ok || slots == nil {
		slots = SlotMap{}
		d.Reservations[teacher] = slots
	}
	return slots
}

// AdminPassword возвращает пароль администратора с учётом дефолта
func (d *Document) AdminPassword() string {
	if d.Settings.AdminPassword == "" {
		return DefaultAdminPassword
	}
	return d.Settings.AdminPassword
}
