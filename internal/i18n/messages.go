package i18n

const (
	KeyGreeting         Key = "greeting"
	KeyWelcome          Key = "welcome"
	KeyWelcomeBack      Key = "welcome_back"
	KeySendPhone        Key = "send_phone"
	KeySendPassword     Key = "send_password"
	KeyUseContactButton Key = "use_contact_button"
	KeyLoginSuccess     Key = "login_success"
	KeyLoginFailed      Key = "login_failed"
	KeyConnectionError  Key = "connection_error"
	KeyInternalError    Key = "internal_error"
	KeyMainMenu         Key = "main_menu"
	KeyProfile          Key = "profile"
	KeyProfileCard      Key = "profile_card"
	KeyChangePhone      Key = "change_phone"
	KeyContactAdmin     Key = "contact_admin"
	KeySettings         Key = "settings"
	KeyBack             Key = "back"
	KeyEnterNewPhone    Key = "enter_new_phone"
	KeyPhoneUpdated     Key = "phone_updated"
	KeyEnterAppealTitle Key = "enter_appeal_title"
	KeyEnterAppealDesc  Key = "enter_appeal_desc"
	KeyAppealSent       Key = "appeal_sent"
	KeyAppealFailed     Key = "appeal_failed"
	KeyCancel           Key = "cancel"
	KeyChooseLang       Key = "choose_lang"
	KeyLogout           Key = "logout"
	KeyLogoutSuccess    Key = "logout_success"
	KeyInvalidPhone     Key = "invalid_phone"
	KeyLanguageChanged  Key = "language_changed"
	KeyInvalidCode      Key = "invalid_code"
	KeyCodeNotReceived  Key = "code_not_received"
	KeyTokenNotReceived Key = "token_not_received"
	KeyPasswordTooShort Key = "password_too_short"
	KeyErrorWithReason  Key = "forgot_password_error"
	KeySendPhoneContact Key = "send_phone_contact"
	KeyUnknownError     Key = "unknown_error"

	KeyMainChoice      Key = "main_choice"
	KeyLogin           Key = "login"
	KeyGetCode         Key = "get_code"
	KeyRegister        Key = "register"
	KeyGetCodeMenu     Key = "get_code_menu"
	KeyGetCodeLogin    Key = "get_code_login"
	KeyGetCodeRegister Key = "get_code_register"
	KeyGetCodeForgot   Key = "get_code_forgot"
	KeyLoginCodeSent   Key = "login_code_sent"

	KeyForgotPassword             Key = "forgot_password"
	KeyForgotPasswordWelcome      Key = "forgot_password_welcome"
	KeyForgotPasswordCodeSent     Key = "forgot_password_code_sent"
	KeyForgotPasswordEnterCode    Key = "forgot_password_enter_code"
	KeyForgotPasswordCodeVerified Key = "forgot_password_code_verified"
	KeyForgotPasswordSuccess      Key = "forgot_password_success"

	KeyRegisterPhone     Key = "register_phone"
	KeyRegisterCodeSent  Key = "register_code_sent"
	KeyRegisterEnterCode Key = "register_enter_code"
	KeyRegisterEnterData Key = "register_enter_data"
	KeyRegisterSuccess   Key = "register_success"
	KeyInvalidRegister   Key = "invalid_register_data"
)

var translations = map[Lang]map[Key]string{
	Uzbek: {
		"uz": "🇺🇿 O'zbekcha",
		"ru": "🇷🇺 Русский",
		"en": "🇬🇧 English",

		KeyGreeting:         "👋 Assalomu aleykum, %s!\n\n",
		KeyWelcome:          "👋 Xush kelibsiz!\n\nIltimos, tilni tanlang:",
		KeyWelcomeBack:      "👋 Xush kelibsiz, %s!\n\nSiz allaqachon tizimga kirgansiz.",
		KeySendPhone:        "📱 Telefon raqamingizni yuboring:",
		KeySendPassword:     "🔐 Parolingizni kiriting:",
		KeyUseContactButton: "📱 Iltimos, telefon raqamingizni tugma orqali yuboring:",
		KeyLoginSuccess:     "✅ Xush kelibsiz!\n\nSiz tizimga muvaffaqiyatli kirdingiz.",
		KeyLoginFailed:      "❌ Xatolik!\n\nTelefon raqam yoki parol noto'g'ri.\n\nIltimos, qaytadan urinib ko'ring.",
		KeyConnectionError:  "⚠️ Serverga ulanishda xatolik!\n\nIltimos, keyinroq qayta urinib ko'ring.",
		KeyInternalError:    "⚠️ Ichki xatolik yuz berdi.\n\nIltimos, keyinroq qayta urinib ko'ring.",
		KeyMainMenu:         "📋 Asosiy menyu\n\nKerakli bo'limni tanlang:",
		KeyProfile:          "👤 Profil",
		KeyProfileCard:      "👤 Profil ma'lumotlari\n\n📝 Ism: %s\n📱 Telefon: %s\n💰 Balans: %s so'm\n👔 Rol: %s\n🌐 Til: %s\n📅 Sana: %s\n🆔 User ID: %d",
		KeyChangePhone:      "📱 Raqamni o'zgartirish",
		KeyContactAdmin:     "📨 Adminga murojaat",
		KeySettings:         "⚙️ Sozlamalar",
		KeyBack:             "🔙 Orqaga",
		KeyEnterNewPhone:    "📱 Yangi telefon raqamingizni kiriting:",
		KeyPhoneUpdated:     "✅ Raqam yangilandi!\n\nYangi raqamingiz muvaffaqiyatli saqlandi.",
		KeyEnterAppealTitle: "📝 Murojaat sarlavhasini kiriting:\n\n💡 Qisqa va aniq yozing",
		KeyEnterAppealDesc:  "📄 Murojaat matnini kiriting:\n\n💡 Batafsil yozing",
		KeyAppealSent:       "✅ Yuborildi!\n\nMurojaatingiz adminga yetkazildi.\nTez orada javob beramiz.",
		KeyAppealFailed:     "⚠️ Xatolik: %s\n\nIltimos botni guruhga admin qiling!",
		KeyCancel:           "❌ Bekor qilish",
		KeyChooseLang:       "🌐 Tilni tanlang",
		KeyLogout:           "🚪 Chiqish",
		KeyLogoutSuccess:    "✅ Siz tizimdan muvaffaqiyatli chiqdingiz.\n\nQaytadan kirish uchun /start ni bosing.",
		KeyInvalidPhone:     "❌ Noto'g'ri format!\n\nIltimos, to'g'ri telefon raqam kiriting.",
		KeyLanguageChanged:  "✅ Til muvaffaqiyatli o'zgartirildi!",
		KeyInvalidCode:      "❌ Noto'g'ri kod!\n\nIltimos, qaytadan urinib ko'ring.",
		KeyCodeNotReceived:  "❌ Kod olinmadi!\n\nIltimos, qaytadan urinib ko'ring.",
		KeyTokenNotReceived: "❌ Tiklash tokeni olinmadi!\n\nIltimos, qaytadan urinib ko'ring.",
		KeyPasswordTooShort: "❌ Parol kamida 6 ta belgidan iborat bo'lishi kerak!",
		KeyErrorWithReason:  "❌ Xatolik: %s",
		KeySendPhoneContact: "📱 Telefon raqamni yuborish",
		KeyUnknownError:     "Noma'lum xatolik",

		KeyMainChoice:      "🔐 Kerakli bo'limni tanlang:",
		KeyLogin:           "🔐 Kirish",
		KeyGetCode:         "📱 Kodni olish",
		KeyRegister:        "📝 Ro'yxatdan o'tish",
		KeyGetCodeMenu:     "📱 Kodni olish\n\nKerakli bo'limni tanlang:",
		KeyGetCodeLogin:    "🔐 Kirish uchun kod",
		KeyGetCodeRegister: "📝 Ro'yxatdan o'tish uchun kod",
		KeyGetCodeForgot:   "🔑 Parolni tiklash uchun kod",
		KeyLoginCodeSent:   "✅ Kod yuborildi!\n\n🔐 Tasdiqlash kodingiz: <b>%s</b>\n\nKodni kiriting:",

		KeyForgotPassword:             "🔑 Parolni tiklash",
		KeyForgotPasswordWelcome:      "🔑 Parolni tiklash\n\nParolni tiklash uchun telefon raqamingizni yuboring:",
		KeyForgotPasswordCodeSent:     "✅ Kod yuborildi!\n\n🔐 Tasdiqlash kodingiz: <b>%s</b>\n\nKodni kiriting:",
		KeyForgotPasswordEnterCode:    "🔐 Tasdiqlash kodini kiriting:",
		KeyForgotPasswordCodeVerified: "✅ Kod tasdiqlandi!\n\nYangi parolingizni kiriting (kamida 6 ta belgi):",
		KeyForgotPasswordSuccess:      "✅ Parol muvaffaqiyatli o'zgartirildi!\n\nEndi yangi parolingiz bilan kirishingiz mumkin.",

		KeyRegisterPhone:     "📝 Ro'yxatdan o'tish uchun telefon raqamingizni yuboring:",
		KeyRegisterCodeSent:  "✅ Kod yuborildi!\n\n🔐 Tasdiqlash kodingiz: <b>%s</b>\n\nKodni kiriting:",
		KeyRegisterEnterCode: "🔐 Tasdiqlash kodini kiriting:",
		KeyRegisterEnterData: "📝 Ro'yxatdan o'tish ma'lumotlari\n\nQuyidagi formatda kiriting:\n\n<b>Ism|Parol|Role</b>\n\nMasalan:\n<b>John Doe|password123|user</b>",
		KeyRegisterSuccess:   "✅ Muvaffaqiyatli ro'yxatdan o'tdingiz!",
		KeyInvalidRegister:   "❌ Noto'g'ri format!\n\nMa'lumotlarni <b>Ism|Parol|Role</b> ko'rinishida kiriting.",
	},
	Russian: {
		"uz": "🇺🇿 O'zbekcha",
		"ru": "🇷🇺 Русский",
		"en": "🇬🇧 English",

		KeyGreeting:         "👋 Здравствуйте, %s!\n\n",
		KeyWelcome:          "👋 Добро пожаловать!\n\nПожалуйста, выберите язык:",
		KeyWelcomeBack:      "👋 Добро пожаловать, %s!\n\nВы уже вошли в систему.",
		KeySendPhone:        "📱 Отправьте ваш номер телефона:",
		KeySendPassword:     "🔐 Введите ваш пароль:",
		KeyUseContactButton: "📱 Пожалуйста, отправьте номер телефона с помощью кнопки:",
		KeyLoginSuccess:     "✅ Добро пожаловать!\n\nВы успешно вошли в систему.",
		KeyLoginFailed:      "❌ Ошибка!\n\nНеверный номер телефона или пароль.\n\nПожалуйста, попробуйте снова.",
		KeyConnectionError:  "⚠️ Ошибка подключения к серверу!\n\nПожалуйста, попробуйте позже.",
		KeyInternalError:    "⚠️ Внутренняя ошибка.\n\nПожалуйста, попробуйте позже.",
		KeyMainMenu:         "📋 Главное меню\n\nВыберите нужный раздел:",
		KeyProfile:          "👤 Профиль",
		KeyProfileCard:      "👤 Информация профиля\n\n📝 Имя: %s\n📱 Телефон: %s\n💰 Баланс: %s сум\n👔 Роль: %s\n🌐 Язык: %s\n📅 Дата: %s\n🆔 User ID: %d",
		KeyChangePhone:      "📱 Изменить номер",
		KeyContactAdmin:     "📨 Связаться с админом",
		KeySettings:         "⚙️ Настройки",
		KeyBack:             "🔙 Назад",
		KeyEnterNewPhone:    "📱 Введите новый номер телефона:",
		KeyPhoneUpdated:     "✅ Номер обновлен!\n\nВаш новый номер успешно сохранен.",
		KeyEnterAppealTitle: "📝 Введите заголовок обращения:\n\n💡 Кратко и ясно",
		KeyEnterAppealDesc:  "📄 Введите текст обращения:\n\n💡 Подробно опишите вашу проблему",
		KeyAppealSent:       "✅ Отправлено!\n\nВаше обращение доставлено админу.\nМы ответим в ближайшее время.",
		KeyAppealFailed:     "⚠️ Ошибка: %s\n\nПожалуйста, сделайте бота администратором группы!",
		KeyCancel:           "❌ Отмена",
		KeyChooseLang:       "🌐 Выберите язык",
		KeyLogout:           "🚪 Выйти",
		KeyLogoutSuccess:    "✅ Вы успешно вышли из системы.\n\nНажмите /start чтобы войти снова.",
		KeyInvalidPhone:     "❌ Неверный формат!\n\nПожалуйста, введите правильный номер.",
		KeyLanguageChanged:  "✅ Язык успешно изменен!",
		KeyInvalidCode:      "❌ Неверный код!\n\nПожалуйста, попробуйте снова.",
		KeyCodeNotReceived:  "❌ Код не получен!\n\nПожалуйста, попробуйте снова.",
		KeyTokenNotReceived: "❌ Токен восстановления не получен!\n\nПожалуйста, попробуйте снова.",
		KeyPasswordTooShort: "❌ Пароль должен содержать минимум 6 символов!",
		KeyErrorWithReason:  "❌ Ошибка: %s",
		KeySendPhoneContact: "📱 Отправить номер телефона",
		KeyUnknownError:     "Неизвестная ошибка",

		KeyMainChoice:      "🔐 Выберите нужный раздел:",
		KeyLogin:           "🔐 Вход",
		KeyGetCode:         "📱 Получить код",
		KeyRegister:        "📝 Регистрация",
		KeyGetCodeMenu:     "📱 Получить код\n\nВыберите нужный раздел:",
		KeyGetCodeLogin:    "🔐 Код для входа",
		KeyGetCodeRegister: "📝 Код для регистрации",
		KeyGetCodeForgot:   "🔑 Код для восстановления пароля",
		KeyLoginCodeSent:   "✅ Код отправлен!\n\n🔐 Ваш код подтверждения: <b>%s</b>\n\nВведите код:",

		KeyForgotPassword:             "🔑 Восстановить пароль",
		KeyForgotPasswordWelcome:      "🔑 Восстановление пароля\n\nОтправьте ваш номер телефона для восстановления пароля:",
		KeyForgotPasswordCodeSent:     "✅ Код отправлен!\n\n🔐 Ваш код подтверждения: <b>%s</b>\n\nВведите код:",
		KeyForgotPasswordEnterCode:    "🔐 Введите код подтверждения:",
		KeyForgotPasswordCodeVerified: "✅ Код подтвержден!\n\nВведите новый пароль (минимум 6 символов):",
		KeyForgotPasswordSuccess:      "✅ Пароль успешно изменен!\n\nТеперь вы можете войти с новым паролем.",

		KeyRegisterPhone:     "📝 Отправьте ваш номер телефона для регистрации:",
		KeyRegisterCodeSent:  "✅ Код отправлен!\n\n🔐 Ваш код подтверждения: <b>%s</b>\n\nВведите код:",
		KeyRegisterEnterCode: "🔐 Введите код подтверждения:",
		KeyRegisterEnterData: "📝 Данные для регистрации\n\nВведите в следующем формате:\n\n<b>Имя|Пароль|Роль</b>\n\nНапример:\n<b>Иван Иванов|password123|user</b>",
		KeyRegisterSuccess:   "✅ Вы успешно зарегистрировались!",
		KeyInvalidRegister:   "❌ Неверный формат!\n\nВведите данные в виде <b>Имя|Пароль|Роль</b>.",
	},
	English: {
		"uz": "🇺🇿 O'zbekcha",
		"ru": "🇷🇺 Русский",
		"en": "🇬🇧 English",

		KeyGreeting:         "👋 Hello, %s!\n\n",
		KeyWelcome:          "👋 Welcome!\n\nPlease choose your language:",
		KeyWelcomeBack:      "👋 Welcome back, %s!\n\nYou're already logged in.",
		KeySendPhone:        "📱 Send your phone number:",
		KeySendPassword:     "🔐 Enter your password:",
		KeyUseContactButton: "📱 Please share your phone number using the button:",
		KeyLoginSuccess:     "✅ Welcome!\n\nYou have successfully logged in.",
		KeyLoginFailed:      "❌ Error!\n\nInvalid phone number or password.\n\nPlease try again.",
		KeyConnectionError:  "⚠️ Server connection error!\n\nPlease try again later.",
		KeyInternalError:    "⚠️ Internal error.\n\nPlease try again later.",
		KeyMainMenu:         "📋 Main Menu\n\nSelect a section:",
		KeyProfile:          "👤 Profile",
		KeyProfileCard:      "👤 Profile Information\n\n📝 Name: %s\n📱 Phone: %s\n💰 Balance: %s sum\n👔 Role: %s\n🌐 Language: %s\n📅 Date: %s\n🆔 User ID: %d",
		KeyChangePhone:      "📱 Change phone",
		KeyContactAdmin:     "📨 Contact admin",
		KeySettings:         "⚙️ Settings",
		KeyBack:             "🔙 Back",
		KeyEnterNewPhone:    "📱 Enter new phone number:",
		KeyPhoneUpdated:     "✅ Number updated!\n\nYour new number has been saved.",
		KeyEnterAppealTitle: "📝 Enter appeal title:\n\n💡 Short and clear",
		KeyEnterAppealDesc:  "📄 Enter appeal text:\n\n💡 Describe in detail",
		KeyAppealSent:       "✅ Sent!\n\nYour appeal has been delivered to admin.\nWe'll respond soon.",
		KeyAppealFailed:     "⚠️ Error: %s\n\nPlease make the bot an admin of the group!",
		KeyCancel:           "❌ Cancel",
		KeyChooseLang:       "🌐 Choose language",
		KeyLogout:           "🚪 Logout",
		KeyLogoutSuccess:    "✅ You have successfully logged out.\n\nPress /start to login again.",
		KeyInvalidPhone:     "❌ Invalid format!\n\nPlease enter correct phone number.",
		KeyLanguageChanged:  "✅ Language successfully changed!",
		KeyInvalidCode:      "❌ Invalid code!\n\nPlease try again.",
		KeyCodeNotReceived:  "❌ Code was not received!\n\nPlease try again.",
		KeyTokenNotReceived: "❌ Reset token was not received!\n\nPlease try again.",
		KeyPasswordTooShort: "❌ Password must be at least 6 characters!",
		KeyErrorWithReason:  "❌ Error: %s",
		KeySendPhoneContact: "📱 Send phone number",
		KeyUnknownError:     "Unknown error",

		KeyMainChoice:      "🔐 Select a section:",
		KeyLogin:           "🔐 Login",
		KeyGetCode:         "📱 Get code",
		KeyRegister:        "📝 Register",
		KeyGetCodeMenu:     "📱 Get code\n\nSelect a section:",
		KeyGetCodeLogin:    "🔐 Code for login",
		KeyGetCodeRegister: "📝 Code for register",
		KeyGetCodeForgot:   "🔑 Code for reset password",
		KeyLoginCodeSent:   "✅ Code sent!\n\n🔐 Your verification code: <b>%s</b>\n\nEnter the code:",

		KeyForgotPassword:             "🔑 Reset password",
		KeyForgotPasswordWelcome:      "🔑 Reset password\n\nSend your phone number to reset password:",
		KeyForgotPasswordCodeSent:     "✅ Code sent!\n\n🔐 Your verification code: <b>%s</b>\n\nEnter the code:",
		KeyForgotPasswordEnterCode:    "🔐 Enter verification code:",
		KeyForgotPasswordCodeVerified: "✅ Code verified!\n\nEnter your new password (minimum 6 characters):",
		KeyForgotPasswordSuccess:      "✅ Password successfully changed!\n\nYou can now login with your new password.",

		KeyRegisterPhone:     "📝 Send your phone number for registration:",
		KeyRegisterCodeSent:  "✅ Code sent!\n\n🔐 Your verification code: <b>%s</b>\n\nEnter the code:",
		KeyRegisterEnterCode: "🔐 Enter verification code:",
		KeyRegisterEnterData: "📝 Registration data\n\nEnter in the following format:\n\n<b>Name|Password|Role</b>\n\nExample:\n<b>John Doe|password123|user</b>",
		KeyRegisterSuccess:   "✅ You have successfully registered!",
		KeyInvalidRegister:   "❌ Invalid format!\n\nEnter the data as <b>Name|Password|Role</b>.",
	},
}
