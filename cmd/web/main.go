// @title           Recruit Portal API
// @version         1.0
// @description     API рекрутингового портала университета: вакансии, отклики, модерация.
// @contact.name    Career Services
// @contact.email   careers@university.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "recruitportal/internal/app"

func main() {
	app.Run()
}
